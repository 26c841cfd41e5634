package logic

import (
	"context"
	"sync"

	"github.com/BayHyn/battlefield-tool/internal/bindings"
	"github.com/BayHyn/battlefield-tool/internal/models"
)

// MockFetcher implements Fetcher with function fields
type MockFetcher struct {
	GTPlayerFunc   func(ctx context.Context, game, prop, name string) (map[string]any, error)
	GTServersFunc  func(ctx context.Context, game, serverName string) (map[string]any, error)
	FetchBTRFunc   func(ctx context.Context, prop, playerName, game string) (map[string]any, error)
	LookupEAIDFunc func(ctx context.Context, name string) (string, error)

	mu       sync.Mutex
	BTRProps []string
}

func (m *MockFetcher) GTPlayer(ctx context.Context, game, prop, name string) (map[string]any, error) {
	return m.GTPlayerFunc(ctx, game, prop, name)
}

func (m *MockFetcher) GTServers(ctx context.Context, game, serverName string) (map[string]any, error) {
	return m.GTServersFunc(ctx, game, serverName)
}

func (m *MockFetcher) FetchBTR(ctx context.Context, prop, playerName, game string) (map[string]any, error) {
	m.mu.Lock()
	m.BTRProps = append(m.BTRProps, prop)
	m.mu.Unlock()
	return m.FetchBTRFunc(ctx, prop, playerName, game)
}

func (m *MockFetcher) LookupEAID(ctx context.Context, name string) (string, error) {
	return m.LookupEAIDFunc(ctx, name)
}

// MockBindStore implements BindStore backed by in-memory maps
type MockBindStore struct {
	UserBinds       map[string]*models.UserBind
	ChannelDefaults map[string]*models.ChannelDefault
	UpsertUserErr   error
}

func NewMockBindStore() *MockBindStore {
	return &MockBindStore{
		UserBinds:       make(map[string]*models.UserBind),
		ChannelDefaults: make(map[string]*models.ChannelDefault),
	}
}

func (m *MockBindStore) UpsertUserBind(ctx context.Context, chatID, eaName, eaID string) error {
	if m.UpsertUserErr != nil {
		return m.UpsertUserErr
	}
	m.UserBinds[chatID] = &models.UserBind{ChatID: chatID, EAName: eaName, EAID: eaID}
	return nil
}

func (m *MockBindStore) QueryUserBind(ctx context.Context, chatID string) (*models.UserBind, error) {
	bind, ok := m.UserBinds[chatID]
	if !ok {
		return nil, bindings.ErrNotFound
	}
	return bind, nil
}

func (m *MockBindStore) UpsertChannelDefault(ctx context.Context, channelID, game string) error {
	m.ChannelDefaults[channelID] = &models.ChannelDefault{ChannelID: channelID, Game: game}
	return nil
}

func (m *MockBindStore) QueryChannelDefault(ctx context.Context, channelID string) (*models.ChannelDefault, error) {
	def, ok := m.ChannelDefaults[channelID]
	if !ok {
		return nil, bindings.ErrNotFound
	}
	return def, nil
}

// MockRenderer implements Renderer, echoing which builder ran
type MockRenderer struct{}

func (m *MockRenderer) Main(ctx context.Context, bundle *models.ReportBundle) (string, error) {
	return "main:" + bundle.Game, nil
}

func (m *MockRenderer) Weapons(ctx context.Context, bundle *models.ReportBundle) (string, error) {
	return "weapons:" + bundle.Game, nil
}

func (m *MockRenderer) Vehicles(ctx context.Context, bundle *models.ReportBundle) (string, error) {
	return "vehicles:" + bundle.Game, nil
}

func (m *MockRenderer) Soldiers(ctx context.Context, bundle *models.ReportBundle) (string, error) {
	return "soldiers:" + bundle.Game, nil
}

func (m *MockRenderer) Servers(ctx context.Context, bundle *models.ReportBundle) (string, error) {
	return "servers:" + bundle.Game, nil
}

// MockHistory implements HistorySink
type MockHistory struct {
	Events []models.QueryEvent
}

func (m *MockHistory) Record(event models.QueryEvent) bool {
	m.Events = append(m.Events, event)
	return true
}
