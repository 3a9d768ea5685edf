package tools

import (
	"fmt"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/honeycarbs/vacancy-gateway/internal/result"
)

// textResult returns a text-only ToolResult
func textResult(msg string) *sdkmcp.CallToolResult {
	return &sdkmcp.CallToolResult{
		Content: []sdkmcp.Content{
			&sdkmcp.TextContent{Text: msg},
		},
	}
}

// envelopeResult reports res as structured output. Anything but success is
// flagged as a tool error so agents do not treat it as data.
func envelopeResult[T any](tool string, res result.Result[T], summary func(T) string) (*sdkmcp.CallToolResult, any, error) {
	env := result.ToEnvelope(res)

	payload, ok := res.Payload()
	if !ok {
		out := textResult(fmt.Sprintf("[%s] %s", tool, res))
		out.IsError = true
		return out, env, nil
	}
	return textResult(fmt.Sprintf("[%s] %s", tool, summary(payload))), env, nil
}
