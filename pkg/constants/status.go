package constants

const (
	StatusOK = "ok"
)
