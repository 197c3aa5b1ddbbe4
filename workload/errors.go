package workload

type workloadError string

var _ error = workloadError("")

func (err workloadError) Error() string {
	return string(err)
}

const (
	ErrUnknownOp    = workloadError("unknown operation")
	ErrMissingKey   = workloadError("missing key")
	ErrMissingValue = workloadError("missing value")
	ErrTooManyArgs  = workloadError("too many arguments")
)
