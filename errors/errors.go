package errors

import (
	"github.com/ygrebnov/errorc"

	"github.com/ygrebnov/databind/constants"
)

var namespace = errorc.Namespace(constants.Namespace)

// Sentinel errors. Use errors.Is to match.
var (
	// Configuration errors: raised as panics by constructors and Bind.
	ErrInvalidTag        = namespace.NewError("two-way control must have a positive tag")
	ErrNilControl        = namespace.NewError("nil control")
	ErrNilFunc           = namespace.NewError("nil push or pull function")
	ErrNotStruct         = namespace.NewError("model must be a struct")
	ErrFieldNotFound     = namespace.NewError("field not found")
	ErrFieldTypeMismatch = namespace.NewError("field type mismatch")
	ErrInvalidField      = namespace.NewError("field must have a name and a getter")
	ErrReadOnlyField     = namespace.NewError("field is read-only")

	ErrSetDefault                    = namespace.NewError("cannot set default value")
	ErrDefaultLiteralUnsupportedKind = namespace.NewError("default literal unsupported kind")
)

var newKey = errorc.KeyFactory(constants.ErrorFieldNamespace)

// Internal hierarchical segments used to build dotted keys.
const (
	keySegmentField   = "field"
	keySegmentValue   = "value"
	keySegmentControl = "control"
	keySegmentModel   = "model"
	keySegmentDefault = "default"
)

// Exported structured error field keys
var (
	ErrorFieldFieldPath = newKey("path", keySegmentField) // databind.field.path
	ErrorFieldFieldType = newKey("type", keySegmentField) // databind.field.type
	ErrorFieldValueType = newKey("type", keySegmentValue) // databind.value.type
)

var (
	ErrorFieldControlTag  = newKey("tag", keySegmentControl)  // databind.control.tag
	ErrorFieldControlType = newKey("type", keySegmentControl) // databind.control.type
)

var (
	ErrorFieldModelType = newKey("type", keySegmentModel) // databind.model.type
)

var (
	ErrorFieldDefaultLiteralKind = newKey("literal_kind", keySegmentDefault) // databind.default.literal_kind
)

var (
	ErrorFieldCause = newKey("cause")
)
