package pkg

import "fmt"

type ErrPanelAPI struct {
	Cause string
	Info  string
	Err   error
}

func (e ErrPanelAPI) Error() string {
	return fmt.Sprintf("%s; got error: %s; info: %s", e.Cause, e.Err, e.Info)
}

func (e ErrPanelAPI) Unwrap() error {
	return e.Err
}
