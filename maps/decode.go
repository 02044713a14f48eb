package maps

import (
	"encoding/json"

	"github.com/MKhiriev/go-gmaps/models"
)

// Payload is a decoded JSON response body. Endpoint methods usually decode
// into typed structs instead; Payload is the generic form returned by
// [Client.Get].
type Payload map[string]any

// statusEnvelope is the API-level status every standard response body
// carries, distinct from the HTTP status code.
type statusEnvelope struct {
	Status       string `json:"status"`
	ErrorMessage string `json:"error_message"`
}

// decodeResponse is the default [DecodeFunc]: it classifies the HTTP status,
// parses the body as JSON, and dispatches on the API-level "status" field.
// Transport-level and API-level failures surface as distinct error kinds so
// callers can apply different retry policies to each.
func decodeResponse(resp models.RawResponse) (Payload, error) {
	if err := classifyStatus(resp); err != nil {
		return nil, err
	}

	var payload Payload
	if err := json.Unmarshal(resp.Body, &payload); err != nil {
		return nil, newError(ErrMalformedResponse, "body is not valid JSON: "+err.Error(), &resp)
	}

	status, _ := payload["status"].(string)
	message, _ := payload["error_message"].(string)
	if err := classifyAPIStatus(status, message, resp); err != nil {
		return nil, err
	}

	return payload, nil
}

// decodeInto runs the same two-layer decode as decodeResponse but unmarshals
// the validated body into out. Used by the typed endpoint methods.
func decodeInto(resp models.RawResponse, out any) error {
	if err := classifyStatus(resp); err != nil {
		return err
	}

	var env statusEnvelope
	if err := json.Unmarshal(resp.Body, &env); err != nil {
		return newError(ErrMalformedResponse, "body is not valid JSON: "+err.Error(), &resp)
	}
	if err := classifyAPIStatus(env.Status, env.ErrorMessage, resp); err != nil {
		return err
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(resp.Body, out); err != nil {
		return newError(ErrMalformedResponse, "decode response body: "+err.Error(), &resp)
	}
	return nil
}

// classifyAPIStatus dispatches the API-level status field. OK and
// ZERO_RESULTS are both success: an empty result set is a valid answer, not
// a failure.
func classifyAPIStatus(status, message string, resp models.RawResponse) error {
	switch status {
	case "OK", "ZERO_RESULTS":
		return nil
	case "OVER_QUERY_LIMIT":
		return newError(ErrRateLimited, message, &resp)
	case "REQUEST_DENIED":
		return newError(ErrRequestDenied, message, &resp)
	case "INVALID_REQUEST":
		return newError(ErrInvalidRequest, message, &resp)
	default:
		return newError(ErrAPI, message, &resp)
	}
}

// roadsErrorEnvelope is the google.rpc-style error body the Roads API
// returns instead of the standard status envelope.
type roadsErrorEnvelope struct {
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error"`
}

// decodeRoadsResponse is the [DecodeFunc] for the Roads API. Roads bodies
// carry no top-level "status"; failures arrive as {"error":{code,message,
// status}} with a google.rpc status string.
func decodeRoadsResponse(resp models.RawResponse) (Payload, error) {
	if err := classifyStatus(resp); err != nil {
		return nil, err
	}

	var payload Payload
	if err := json.Unmarshal(resp.Body, &payload); err != nil {
		return nil, newError(ErrMalformedResponse, "body is not valid JSON: "+err.Error(), &resp)
	}
	if err := classifyRoadsBody(resp); err != nil {
		return nil, err
	}

	return payload, nil
}

// decodeRoadsInto is the typed counterpart of decodeRoadsResponse.
func decodeRoadsInto(resp models.RawResponse, out any) error {
	if err := classifyStatus(resp); err != nil {
		return err
	}
	if err := classifyRoadsBody(resp); err != nil {
		return err
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(resp.Body, out); err != nil {
		return newError(ErrMalformedResponse, "decode response body: "+err.Error(), &resp)
	}
	return nil
}

func classifyRoadsBody(resp models.RawResponse) error {
	var env roadsErrorEnvelope
	if err := json.Unmarshal(resp.Body, &env); err != nil {
		return newError(ErrMalformedResponse, "body is not valid JSON: "+err.Error(), &resp)
	}
	if env.Error == nil {
		return nil
	}

	switch env.Error.Status {
	case "INVALID_ARGUMENT":
		return newError(ErrInvalidRequest, env.Error.Message, &resp)
	case "PERMISSION_DENIED":
		return newError(ErrRequestDenied, env.Error.Message, &resp)
	case "RESOURCE_EXHAUSTED":
		return newError(ErrRateLimited, env.Error.Message, &resp)
	default:
		return newError(ErrAPI, env.Error.Message, &resp)
	}
}
