// Package errs holds the typed errors shared by the domain, the use cases and
// the adapters.
//
// Every type unwraps to a sentinel, so callers branch with errors.Is and read
// details with errors.As:
//
//	switch {
//	case errors.Is(err, errs.ErrObjectNotFound):
//	    // 404
//	case errors.Is(err, errs.ErrStoreUnavailable):
//	    // 503, the whole operation may be retried
//	}
//
// StoreUnavailableError also unwraps to the driver error it carries.
package errs
