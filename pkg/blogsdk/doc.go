/*
Package blogsdk is a Go client for the microblog HTTP API.

The request and response types in this package are the wire format of the
API; the server encodes exactly these structs.

# Sessions

Authentication is a session cookie set by Login, so a Client carries a cookie
jar and acts as one user at a time. Use one Client per user:

	alice := blogsdk.NewClient("http://localhost:8080")
	if _, err := alice.Login(ctx, blogsdk.LoginRequest{Username: "alice", Password: "..."}); err != nil {
		return err
	}

	if _, err := alice.Follow(ctx, "bob"); err != nil {
		return err
	}
	page, err := alice.Feed(ctx, blogsdk.PageOptions{Page: 1})

# Errors

Every non-2xx response becomes an *APIError carrying the HTTP status, the
error code from ErrorResponse and any per-field validation details:

	_, err := client.Register(ctx, req)
	var apiErr *blogsdk.APIError
	if errors.As(err, &apiErr) && apiErr.Code == blogsdk.ErrorCodeValidation {
		fmt.Println(apiErr.Details["username"])
	}
*/
package blogsdk
