package config

// ConfigError reports a problem with arguments, flags or config files.
type ConfigError struct {
	// Missing names the absent positional argument, if that is the problem.
	Missing string
	Msg     string
	Err     error
}

func (e *ConfigError) Error() string {
	if e.Missing != "" {
		return "not enough arguments: missing " + e.Missing
	}
	if e.Err != nil {
		if e.Msg == "" {
			return e.Err.Error()
		}
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *ConfigError) Unwrap() error { return e.Err }
