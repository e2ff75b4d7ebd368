/*
Package proxy forwards merchant payment requests to an external processor.

One Service is built per processor from a Provider description and handles a
request in a fixed order:

	parse and validate -> resolve credentials -> capability gate -> forward -> audit

Failures before the forward step are returned as client or not-found errors and
leave no trace in the integration log. Once the forward step runs, exactly one
integration log row is written from its Outcome, on success and failure alike.

Usage:

	svc := proxy.NewService(proxy.CBDC, credentialRepo, proxy.NewHTTPForwarder(30*time.Second), audit.NewLogger(logRepo))

	req, err := proxy.ParseRequest(body)
	resp, err := svc.Forward(ctx, req)
*/
package proxy
