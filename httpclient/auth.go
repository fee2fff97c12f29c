package httpclient

import "encoding/base64"

// HeaderAuthorization is the name of the HTTP authorization header.
const HeaderAuthorization = "Authorization"

// BasicAuthorization returns the Authorization header value for HTTP Basic
// authentication with the given credentials.
func BasicAuthorization(username, password string) string {
	return "Basic " + base64.StdEncoding.EncodeToString([]byte(username+":"+password))
}
