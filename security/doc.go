// Package security builds the client-side TLS settings of the API
// transport: a private CA bundle for intercepting proxies or staging
// hosts, an optional client certificate, and a server name override.
//
//	untappd:
//	  tls:
//	    ca_file: /etc/ssl/corp-ca.pem
package security
