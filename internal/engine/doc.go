// Package engine provides semantic encoding of natural-language content
// into compact token grammars for language-model consumption.
//
// The engine routes content to one of three encoders: task/configuration
// prompts, customer-service transcripts, and uniform structured records.
// Encoding is rule-driven and deterministic; the same input, configuration
// and vocabulary always produce the same output, with no model calls
// anywhere on the path.
//
// # Output safety
//
// Every result routes through the output assembler, which enforces a hard
// no-regression rule: when the compressed form fails to reduce the token
// count, the original content is returned verbatim and the reported
// compression ratio is exactly zero. Callers never receive output that
// costs more tokens than what they sent in.
//
// # Usage
//
//	cfg := config.New()
//	eng, err := engine.New(cfg, logger)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	result, err := eng.Encode(ctx, prompt, encoder.KindPrompt)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("%d → %d tokens (%.1f%%)\n",
//	    result.NTokens, result.CTokens, result.CompressionRatio())
//
// Per-record failures in structured-data encoding are reported on the
// result's RecordErrors and never fail the batch; only batch-level
// failures (empty input, undecodable records) return an error.
package engine
