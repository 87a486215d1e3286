// Package eandb provides a client for the ean-db.com barcode lookup API.
//
// # Architecture
//
// The package is organized into several components:
//
//   - Dispatch: selects the response envelope for a status code and parses it
//   - Classify: maps an error code and description to an ErrorKind
//   - Client: blocking and batched lookups on top of a Transport
//   - Errors: structured error types for malformed bodies and unexpected statuses
//
// Dispatch and Classify are pure. They never log or retry, so they are safe to
// call from any goroutine. Authentication, timeouts and retries belong to the
// Transport, see package transport.
//
// # Usage
//
//	logger := zerolog.New(os.Stdout)
//	tr, err := transport.New(transport.Config{Token: "your-jwt"}, logger)
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer tr.Close()
//
//	client, err := eandb.NewClient(tr, logger, eandb.WithVersion(eandb.V2))
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	resp, err := client.Lookup(ctx, "4006381333931")
//	if err != nil {
//		log.Fatal(err) // malformed body, unexpected status or transport failure
//	}
//
//	switch r := resp.(type) {
//	case *eandb.SuccessResponse:
//		fmt.Println(r.Product.Title(), r.Balance)
//	case *eandb.ErrorResponse:
//		fmt.Println(r.Kind(), r.Detail.Description)
//	}
//
// # Error Handling
//
// Three families of failures stay distinguishable:
//
//   - *ErrorResponse / *APIError: the API answered 400, 403 or 404; see ErrorKind
//   - *MalformedResponseError: the body did not match the shape for its status
//   - *UnexpectedStatusError: any status other than 200, 400, 403 or 404
//
// APIError matches the per-kind sentinels with errors.Is:
//
//	if errors.Is(err, eandb.ErrJWTExpired) {
//		// refresh the token
//	}
package eandb
