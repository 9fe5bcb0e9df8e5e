package wikipedia

import (
	"context"
	"net/url"

	"github.com/olgasafonova/wikipedia-mcp-server/internal/base"
	apierrors "github.com/olgasafonova/wikipedia-mcp-server/internal/errors"
)

// Action is a MediaWiki API action
type Action string

const (
	ActionOpenSearch Action = "opensearch"
	ActionQuery      Action = "query"
	ActionParse      Action = "parse"
)

// Request is one API call: an action, its parameters and the target language.
// Multi-valued parameters are passed pre-joined with "|".
// A Request is never modified after it is built; pagination derives new ones
// with WithContinuation.
type Request struct {
	Action   Action
	Params   url.Values
	Language string
}

// NewRequest builds a request. params is copied.
func NewRequest(action Action, params url.Values, language string) Request {
	return Request{
		Action:   action,
		Params:   cloneValues(params),
		Language: language,
	}
}

// WithContinuation returns a copy of r with the continuation fields merged in
func (r Request) WithContinuation(tokens map[string]string) Request {
	next := r
	next.Params = cloneValues(r.Params)
	for k, v := range tokens {
		next.Params.Set(k, v)
	}
	return next
}

// form returns the POST body fields: the parameters plus action and format
func (r Request) form() url.Values {
	form := cloneValues(r.Params)
	form.Set("action", string(r.Action))
	form.Set("format", "json")
	return form
}

func cloneValues(v url.Values) url.Values {
	out := make(url.Values, len(v))
	for k, vals := range v {
		out[k] = append([]string(nil), vals...)
	}
	return out
}

// Execute sends req as a form-encoded POST to the language's API endpoint and
// returns the decoded JSON value. Parameters are percent-encoded as UTF-8.
//
// Fails with *errors.TransportError on network failure or a non-2xx status,
// *errors.DecodeError on an invalid body, and *errors.APIError when the API
// answers with an error object.
func (c *Client) Execute(ctx context.Context, req Request) (interface{}, error) {
	lang := c.language(req.Language)

	c.Logger.Debug("Executing API request",
		"action", req.Action,
		"language", lang)

	var decoded interface{}
	err := c.DoJSON(ctx, base.RequestConfig{
		URL:     c.endpoint(lang),
		Form:    req.form(),
		Service: service,
		Action:  string(req.Action),
	}, &decoded)
	if err != nil {
		return nil, err
	}

	if apiErr := Response(getMap(decoded)).apiError(); apiErr != nil {
		c.Logger.Warn("API returned error",
			"action", req.Action,
			"language", lang,
			"code", apiErr.Code,
			"info", apiErr.Info)
		return nil, apiErr
	}

	return decoded, nil
}

// query executes a request whose response must be a JSON object
func (c *Client) query(ctx context.Context, req Request) (Response, error) {
	decoded, err := c.Execute(ctx, req)
	if err != nil {
		return nil, err
	}
	obj := getMap(decoded)
	if obj == nil {
		return nil, &apierrors.UnexpectedResponseShapeError{Path: string(req.Action)}
	}
	return Response(obj), nil
}
