package recipe

import (
	"github.com/pkg/errors"
)

var (
	ErrBeverageMustBeSet = errors.New("beverage must be set")
	ErrNotifierMustBeSet = errors.New("notifier must be set")
)
