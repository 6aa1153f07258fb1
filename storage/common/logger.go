package common

// NoopLogger satisfies badger.Logger and discards everything
type NoopLogger struct{}

func (*NoopLogger) Errorf(string, ...interface{})   {}
func (*NoopLogger) Warningf(string, ...interface{}) {}
func (*NoopLogger) Infof(string, ...interface{})    {}
func (*NoopLogger) Debugf(string, ...interface{})   {}
