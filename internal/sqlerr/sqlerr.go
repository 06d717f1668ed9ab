// Package sqlerr translates database driver errors into API errors.
//
// It parses the SQLSTATE codes and metadata pgx surfaces (unique, foreign
// key, not-null and check violations) and converts them into errs.HTTPError
// values with machine codes and user-friendly messages, so the rest of the
// application never inspects driver errors directly.
package sqlerr
