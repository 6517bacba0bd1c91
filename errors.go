package databind

import (
	"github.com/ygrebnov/databind/constants"
	"github.com/ygrebnov/databind/errors"
)

const Namespace = constants.Namespace

// Sentinel errors re-exported from the errors package. Use errors.Is to match.
var (
	ErrInvalidTag                    = errors.ErrInvalidTag
	ErrNilControl                    = errors.ErrNilControl
	ErrNilFunc                       = errors.ErrNilFunc
	ErrNotStruct                     = errors.ErrNotStruct
	ErrFieldNotFound                 = errors.ErrFieldNotFound
	ErrFieldTypeMismatch             = errors.ErrFieldTypeMismatch
	ErrInvalidField                  = errors.ErrInvalidField
	ErrReadOnlyField                 = errors.ErrReadOnlyField
	ErrSetDefault                    = errors.ErrSetDefault
	ErrDefaultLiteralUnsupportedKind = errors.ErrDefaultLiteralUnsupportedKind
)
