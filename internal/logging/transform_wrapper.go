package logging

import (
	"github.com/sirupsen/logrus"
)

// TransformWrapper runs one snapshot transform, logging start, duration and
// outcome around it. The transform reports its figures through the LogData.
func TransformWrapper(
	loggingName string,
	log *logrus.Logger,
	transform func(*LogData) error,
) error {
	logData := NewLogData(log)

	log.Infof("Transform.%v.Start", loggingName)

	endTimer := logData.AddTiming("duration")
	err := transform(logData)
	endTimer()
	if err != nil {
		logData.Log().WithError(err).Errorf("Transform.%v.Error", loggingName)
		return err
	}

	logData.Log().Infof("Transform.%v.Complete", loggingName)
	return nil
}
