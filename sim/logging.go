package sim

import "github.com/sirupsen/logrus"

// newDefaultLogger returns the logger a Simulator uses until
// Simulator.SetLogger overrides it. Virtual time has no relation to wall
// time, so the default formatter omits the entry timestamp rather than
// implying one.
func newDefaultLogger() *logrus.Logger {
	l := logrus.New()
	l.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	return l
}
