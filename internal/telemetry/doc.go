// Package telemetry provides OpenTelemetry instrumentation for sempress.
//
// # Overview
//
// This package wires distributed tracing and metrics through the
// OpenTelemetry Go SDK, exporting over OTLP (gRPC or HTTP/protobuf) to a
// collector. The encoding engine obtains its tracer and meter from the
// global providers this package installs.
//
// # Usage
//
// Create a telemetry instance at startup:
//
//	cfg := telemetry.NewDefaultConfig()
//	cfg.Enabled = true
//	cfg.Endpoint = "localhost:4317"
//	tel, err := telemetry.New(ctx, cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer tel.Shutdown(ctx)
//
// # Error Handling
//
// Telemetry failures never fail the caller. If a provider cannot be
// initialized the instance degrades to no-op providers and keeps serving.
//
// # Testing
//
// Use TestTelemetry for tests:
//
//	tt := telemetry.NewTestTelemetry()
//	tracer := tt.Tracer("test")
//	_, span := tracer.Start(ctx, "test-span")
//	span.End()
//	tt.AssertSpanExists(t, "test-span")
package telemetry
