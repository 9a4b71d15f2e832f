// Package securelend is the Go client for the SecureLend financial product
// comparison service.
//
// A [SecureLend] client exposes three resources, each a thin validated
// wrapper around one or two remote tools:
//
//	client, err := securelend.New(os.Getenv("SECURELEND_API_KEY"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	offers, err := client.Loans.Compare(ctx, loans.CompareRequest{
//	    Amount:  200000,
//	    Purpose: loans.PurposeEquipmentPurchase,
//	    Business: &loans.Business{
//	        Revenue:        utils.Ptr(1200000.0),
//	        CreditScore:    720,
//	        TimeInBusiness: 36,
//	    },
//	})
//
// Requests are validated locally before anything is sent. The connection
// is established lazily on the first call, or explicitly with
// [SecureLend.Connect].
//
// # Errors
//
// Every error returned by an operation is an *apierror.Error with a stable
// kind: authentication_error, rate_limit_error, validation_error,
// not_found, network_error or server_error. Use errors.Is with the
// apierror sentinels, or apierror.As for the typed payload. No call is
// retried unless a retry middleware is installed with [WithMiddleware].
//
// # Configuration
//
// Options cover the service URL, HTTP client, timeout, logging and
// observability. [NewFromEnv] reads SECURELEND_* variables (loading a .env
// file first when present) and [LoadConfig] reads a YAML file.
package securelend
