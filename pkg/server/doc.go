// Package server exposes seed packet rendering over HTTP.
//
// # Routes
//
//	GET  /            HTML form for filling in a packet
//	POST /packet      render a packet (form or JSON body), responds with the PDF
//	GET  /api/images  JSON list of available background images
//	GET  /healthz     liveness probe
//
// POST /packet accepts either an application/x-www-form-urlencoded body with
// the fields seedName, date, notes and backgroundImage, or the same fields as
// a JSON object. Text fields are printed exactly as sent; text carrying HTML
// tags or comments is rejected with INVALID_INPUT rather than rewritten. A
// successful response is an attachment named SeedPacket.pdf carrying the run
// ID in the X-Render-ID header. Failures are JSON objects of the form
// {"code": "INVALID_DATE", "message": "..."}.
//
// # Usage
//
//	runner := pipeline.NewRunner(c, nil, store, logger)
//	srv := server.New(runner, server.WithLogger(logger))
//	err := srv.ListenAndServe(ctx, server.Config{Addr: ":8080"})
package server
