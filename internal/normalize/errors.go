package normalize

import (
	"fmt"
	"strings"
)

// SupportedGames lists the game codes queries may target.
var SupportedGames = []string{"bf4", "bf1", "bfv", "bf2042", "bf6"}

// UpstreamError reports a non-success status attached to the raw payload.
// The message is user-facing; callers render it as text instead of a card.
type UpstreamError struct {
	Code    int
	Message string
	Game    string
}

func (e *UpstreamError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = "上游接口返回未知错误"
	}
	return fmt.Sprintf("查询失败(%d): %s\n• 游戏代号: %s\n• 可用代号: %s",
		e.Code, msg, e.Game, strings.Join(SupportedGames, "、"))
}

// UnsupportedError reports a report kind that is invalid for the requested
// game, rejected before any mapping work.
type UnsupportedError struct {
	Game     string
	DataType DataType
	Message  string
}

func (e *UnsupportedError) Error() string {
	return e.Message
}

// MalformedPayloadError reports a payload missing its minimum top-level
// container. Field-level absence never produces this; only a structure the
// mappers cannot proceed without.
type MalformedPayloadError struct {
	Missing string
}

func (e *MalformedPayloadError) Error() string {
	return fmt.Sprintf("响应缺少 %s 结构，无法解析", e.Missing)
}
