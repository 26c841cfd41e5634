package handlers

import (
	"context"

	"github.com/BayHyn/battlefield-tool/internal/logic"
	"github.com/BayHyn/battlefield-tool/internal/models"
)

// MockReportService implements ReportService with function fields
type MockReportService struct {
	ReportFunc      func(ctx context.Context, req logic.ReportRequest) (*models.ReportBundle, error)
	ReportHTMLFunc  func(ctx context.Context, req logic.ReportRequest) (string, error)
	ReportTextFunc  func(ctx context.Context, req logic.ReportRequest) (string, error)
	ServersFunc     func(ctx context.Context, game, serverName string) (*models.ReportBundle, error)
	ServersHTMLFunc func(ctx context.Context, game, serverName string) (string, error)
	BindUserFunc    func(ctx context.Context, chatID, eaName string) (*models.UserBind, error)
	BindChannelFunc func(ctx context.Context, channelID, game string) (*models.ChannelDefault, error)
}

func (m *MockReportService) Report(ctx context.Context, req logic.ReportRequest) (*models.ReportBundle, error) {
	return m.ReportFunc(ctx, req)
}

func (m *MockReportService) ReportHTML(ctx context.Context, req logic.ReportRequest) (string, error) {
	return m.ReportHTMLFunc(ctx, req)
}

func (m *MockReportService) ReportText(ctx context.Context, req logic.ReportRequest) (string, error) {
	return m.ReportTextFunc(ctx, req)
}

func (m *MockReportService) Servers(ctx context.Context, game, serverName string) (*models.ReportBundle, error) {
	return m.ServersFunc(ctx, game, serverName)
}

func (m *MockReportService) ServersHTML(ctx context.Context, game, serverName string) (string, error) {
	return m.ServersHTMLFunc(ctx, game, serverName)
}

func (m *MockReportService) BindUser(ctx context.Context, chatID, eaName string) (*models.UserBind, error) {
	return m.BindUserFunc(ctx, chatID, eaName)
}

func (m *MockReportService) BindChannel(ctx context.Context, channelID, game string) (*models.ChannelDefault, error) {
	return m.BindChannelFunc(ctx, channelID, game)
}

// MockHistoryQueue implements HistoryQueue
type MockHistoryQueue struct {
	Depth int
}

func (m *MockHistoryQueue) QueueDepth() int {
	return m.Depth
}
