package shared

import (
	"cozycup/internal/infra"
	"cozycup/internal/pkg/errs"
)

// TranslateRepoErr turns a repository failure into the error taxonomy. AppErrors
// raised inside a transaction callback pass through untouched.
func TranslateRepoErr(err error, notFoundMsg string) error {
	if err == nil {
		return nil
	}
	if _, ok := errs.AsApp(err); ok {
		return err
	}
	switch {
	case infra.IsKind(err, infra.KindNotFound):
		return errs.NotFound("%s", notFoundMsg).WithCause(err)
	case infra.IsKind(err, infra.KindDuplicateKey):
		return errs.Conflict("Resource already exists").WithCause(err)
	case infra.IsKind(err, infra.KindForeignKeyViolated):
		return errs.Validation("Referenced resource does not exist").WithCause(err)
	default:
		return errs.Internal(err, "Internal server error")
	}
}
