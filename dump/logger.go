package dump

import "github.com/sirupsen/logrus"

var log = logrus.New()

// Logger for the package
var Logger = logrus.NewEntry(log)

// LogLevel sets logging level
func LogLevel(level logrus.Level) {
	log.SetLevel(level)
}
