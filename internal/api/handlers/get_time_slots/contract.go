package get_time_slots

type Logger interface {
	Info(format string, v ...interface{})
}
