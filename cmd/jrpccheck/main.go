// ABOUTME: Main entry point for the JSON-RPC message checker
// ABOUTME: Decodes documents from a file, stdin, or a YAML vector suite

package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/harper/jrpc/internal/config"
	"github.com/harper/jrpc/internal/jsonrpc"
	"github.com/harper/jrpc/internal/logger"
	"github.com/harper/jrpc/internal/vectors"
)

func main() {
	configPath := flag.String("config", "", "path to config file")
	inPath := flag.String("in", "", "JSON document to check ('-' for stdin)")
	vectorPath := flag.String("vectors", "", "YAML vector suite to run")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	logger.SetVerbose(cfg.Log.Verbose)

	switch {
	case *vectorPath != "":
		if !runVectors(*vectorPath) {
			os.Exit(1)
		}
	case *inPath != "":
		if !checkDocument(*inPath, cfg) {
			os.Exit(1)
		}
	default:
		runDemo(cfg)
	}
}

func runVectors(path string) bool {
	suite, err := vectors.LoadSuite(path)
	if err != nil {
		log.Fatalf("failed to load vectors: %v", err)
	}

	passed := 0
	for _, result := range suite.Run() {
		if result.Passed {
			passed++
			logger.Debug("vector %s: ok", result.Name)
			continue
		}

		logger.Error("vector %s: %s", result.Name, result.Detail)
	}

	logger.Info("%d/%d vectors passed", passed, len(suite.Vectors))
	return passed == len(suite.Vectors)
}

func checkDocument(path string, cfg *config.Config) bool {
	data, err := readDocument(path)
	if err != nil {
		log.Fatalf("failed to read document: %v", err)
	}

	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		batch, err := jsonrpc.DecodeBatch(trimmed)
		if err != nil {
			logger.Error("invalid batch: %v", err)
			return false
		}

		kind := "calls"
		if batch.Kind() == jsonrpc.BatchResponses {
			kind = "responses"
		}
		logger.Info("valid batch of %d %s", batch.Len(), kind)
		printEncoded(batch, cfg)
		return true
	}

	message, err := jsonrpc.DecodeMessage(trimmed)
	if err != nil {
		logger.Error("invalid message: %v", err)
		return false
	}

	logger.Info("valid %s", describe(message))
	printEncoded(message, cfg)
	return true
}

func readDocument(path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(os.Stdin)
	}

	return os.ReadFile(path)
}

func describe(m jsonrpc.Message) string {
	switch v := m.(type) {
	case *jsonrpc.Request:
		return fmt.Sprintf("request: method=%s id=%s", v.Method(), v.ID())
	case *jsonrpc.Notification:
		return fmt.Sprintf("notification: method=%s", v.Method())
	case *jsonrpc.Response:
		if v.IsSuccess() {
			return fmt.Sprintf("success response: id=%s", v.ID())
		}
		respErr, _ := v.Err()
		return fmt.Sprintf("error response: id=%s code=%s", v.ID(), respErr.Code())
	default:
		return "message"
	}
}

func printEncoded(v any, cfg *config.Config) {
	encoded, err := json.Marshal(v)
	if err != nil {
		log.Fatalf("failed to re-encode: %v", err)
	}

	if cfg.Output.Format == "pretty" {
		var buf bytes.Buffer
		if err := json.Indent(&buf, encoded, "", "  "); err == nil {
			encoded = buf.Bytes()
		}
	}

	fmt.Println(string(encoded))
}

// runDemo mirrors the round trip a transport would perform: build one of each
// message shape, encode, decode, and confirm the decoded form re-encodes to
// the same bytes.
func runDemo(cfg *config.Config) {
	params, err := jsonrpc.ObjectParameters(
		jsonrpc.ObjectMember{Name: "depth", Value: jsonrpc.RawValue(`3`)},
		jsonrpc.ObjectMember{Name: "path", Value: jsonrpc.RawValue(`"/tmp"`)},
	)
	if err != nil {
		log.Fatalf("failed to build params: %v", err)
	}

	req, err := jsonrpc.NewRequest(jsonrpc.NewRequestID(), "fs/list", params)
	if err != nil {
		log.Fatalf("failed to build request: %v", err)
	}

	success, err := jsonrpc.NewSuccessResponse(jsonrpc.Int64ID(7), jsonrpc.RawValue(`[1,2,3]`))
	if err != nil {
		log.Fatalf("failed to build response: %v", err)
	}

	messages := []jsonrpc.Message{
		req,
		jsonrpc.NewNotification("progress", jsonrpc.ArrayParameters(jsonrpc.RawValue(`42`))),
		success,
		jsonrpc.NewErrorResponse(jsonrpc.NullID(), jsonrpc.NewDefaultError(jsonrpc.ParseError)),
	}

	for _, message := range messages {
		encoded, err := json.Marshal(message)
		if err != nil {
			log.Fatalf("failed to encode: %v", err)
		}

		decoded, err := jsonrpc.DecodeMessage(encoded)
		if err != nil {
			log.Fatalf("failed to decode %s: %v", encoded, err)
		}

		reencoded, err := json.Marshal(decoded)
		if err != nil {
			log.Fatalf("failed to re-encode: %v", err)
		}

		if !bytes.Equal(encoded, reencoded) {
			log.Fatalf("round trip mismatch: %s != %s", encoded, reencoded)
		}

		logger.Info("%s", describe(decoded))
		printEncoded(decoded, cfg)
	}
}
