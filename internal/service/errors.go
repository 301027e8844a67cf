package service

import (
	"errors"
	"log/slog"
	"sort"

	"connectrpc.com/connect"

	"github.com/Ahmed-Ehab99/rentiful-realestate/internal/apperr"
)

// FieldMetaPrefix prefixes the response metadata keys that carry per-field
// validation problems, e.g. "Validation-Field-email: is required".
const FieldMetaPrefix = "Validation-Field-"

var codes = map[apperr.Code]connect.Code{
	apperr.CodeValidation:         connect.CodeInvalidArgument,
	apperr.CodeUnauthenticated:    connect.CodeUnauthenticated,
	apperr.CodeForbidden:          connect.CodePermissionDenied,
	apperr.CodeNotFound:           connect.CodeNotFound,
	apperr.CodeConflict:           connect.CodeAlreadyExists,
	apperr.CodeTransactionFailure: connect.CodeAborted,
	apperr.CodeInternal:           connect.CodeInternal,
}

// toConnectError maps a domain error onto a connect error. Causes are logged
// here and never reach the caller.
func toConnectError(procedure string, err error) error {
	var appErr *apperr.Error
	if !errors.As(err, &appErr) {
		appErr = apperr.Internal(err)
	}

	code, ok := codes[appErr.Code]
	if !ok {
		code = connect.CodeInternal
	}

	switch appErr.Code {
	case apperr.CodeInternal:
		slog.Error("Internal error", "procedure", procedure, "error", appErr.Cause)
		return connect.NewError(code, errors.New("internal error"))
	case apperr.CodeTransactionFailure:
		slog.Error("Transaction failed", "procedure", procedure, "error", appErr.Cause)
		return connect.NewError(code, errors.New(appErr.Message))
	}

	msg := appErr.Message
	if msg == "" {
		msg = appErr.Error()
	}
	connectErr := connect.NewError(code, errors.New(msg))
	if len(appErr.Fields) > 0 {
		fields := make([]string, 0, len(appErr.Fields))
		for f := range appErr.Fields {
			fields = append(fields, f)
		}
		sort.Strings(fields)
		for _, f := range fields {
			connectErr.Meta().Set(FieldMetaPrefix+f, appErr.Fields[f])
		}
	}
	return connectErr
}
