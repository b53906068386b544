//go:build lambda

package main

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"log/slog"
	"os"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
)

var jsonHeader = map[string]string{
	"Content-Type": "application/json",
}

type generateResult struct {
	Elements     int    `json:"elements"`
	Recipes      int    `json:"recipes"`
	Combinations string `json:"combinations"`
	Words        string `json:"words"`
}

var logger = slog.New(slog.NewJSONHandler(os.Stderr, nil))

// handler takes an items.json document as the request body.
func handler(_ context.Context, event events.LambdaFunctionURLRequest) (events.LambdaFunctionURLResponse, error) {
	body := event.Body
	if event.IsBase64Encoded {
		decoded, err := base64.StdEncoding.DecodeString(body)
		if err != nil {
			return errResp(400, "invalid base64 body")
		}
		body = string(decoded)
	}

	g, err := ParseItems(body)
	if err != nil {
		return errResp(400, err.Error())
	}
	ds, err := Generate(g, logger)
	if err != nil {
		if errors.Is(err, ErrUnknownElement) || errors.Is(err, ErrUnknownCombination) {
			return errResp(422, err.Error())
		}
		return errResp(500, err.Error())
	}

	var combos, words bytes.Buffer
	if err := WriteCombinations(&combos, ds.CombinationDepths); err != nil {
		return errResp(500, err.Error())
	}
	if err := WriteWords(&words, ds.Reachability, ds.Elements); err != nil {
		return errResp(500, err.Error())
	}

	resp := generateResult{
		Elements:     ds.Elements.Len(),
		Recipes:      ds.CombinationDepths.Len(),
		Combinations: combos.String(),
		Words:        words.String(),
	}
	respJSON, _ := json.Marshal(resp)
	return events.LambdaFunctionURLResponse{StatusCode: 200, Headers: jsonHeader, Body: string(respJSON)}, nil
}

func errResp(code int, msg string) (events.LambdaFunctionURLResponse, error) {
	body, _ := json.Marshal(map[string]string{"error": msg})
	return events.LambdaFunctionURLResponse{StatusCode: code, Headers: jsonHeader, Body: string(body)}, nil
}

func main() {
	lambda.Start(handler)
}
