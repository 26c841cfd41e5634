// Package render builds the HTML report cards from a normalized bundle.
// Rasterization happens elsewhere; this package only produces markup.
package render

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"html/template"

	"go.uber.org/zap"

	"github.com/BayHyn/battlefield-tool/internal/models"
	"github.com/BayHyn/battlefield-tool/internal/tables"
)

//go:embed templates/*.html
var templateFS embed.FS

const updateTimeLayout = "2006-01-02 15:04:05"

// ImageSource resolves an artwork URL to an embeddable data URI, usually
// backed by the Redis image cache. A nil source leaves URLs untouched.
type ImageSource interface {
	GetOrFetch(ctx context.Context, key, url string) (string, error)
	GetWithFallback(ctx context.Context, key, url, fallbackKey string) (string, error)
}

// Builder renders report bundles against the embedded templates.
type Builder struct {
	tmpl   *template.Template
	images ImageSource
	log    *zap.SugaredLogger
}

// NewBuilder parses the embedded templates. images may be nil.
func NewBuilder(images ImageSource, log *zap.SugaredLogger) (*Builder, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return &Builder{tmpl: tmpl, images: images, log: log}, nil
}

// page is the root context handed to every template.
type page struct {
	Banner     string
	Logo       string
	Background string
	UpdateTime string
	Game       string
	Player     *models.PlayerStats
	Weapons    []models.Weapon
	Vehicles   []models.Vehicle
	Soldiers   []models.Soldier
	Servers    []models.Server
}

func (b *Builder) newPage(ctx context.Context, bundle *models.ReportBundle) page {
	p := page{
		Banner:     tables.Banner(bundle.Game),
		Logo:       tables.Logo(bundle.Game),
		Background: tables.BackgroundColor(bundle.Game),
		UpdateTime: bundle.GeneratedAt.Local().Format(updateTimeLayout),
		Game:       bundle.Game,
		Player:     bundle.Player,
		Weapons:    append([]models.Weapon(nil), bundle.Weapons...),
		Vehicles:   append([]models.Vehicle(nil), bundle.Vehicles...),
		Soldiers:   append([]models.Soldier(nil), bundle.Soldiers...),
		Servers:    bundle.Servers,
	}

	if p.Player != nil {
		player := *p.Player
		player.Avatar = b.avatarImage(ctx, player.Avatar, player.UserName)
		p.Player = &player
	}
	for i := range p.Weapons {
		p.Weapons[i].Image = b.cachedImage(ctx, "weapon", p.Weapons[i].Name, bundle.Game, p.Weapons[i].Image)
	}
	for i := range p.Vehicles {
		p.Vehicles[i].Image = b.cachedImage(ctx, "vehicle", p.Vehicles[i].Name, bundle.Game, p.Vehicles[i].Image)
	}
	for i := range p.Soldiers {
		p.Soldiers[i].ImageURL = b.cachedImage(ctx, "soldier", p.Soldiers[i].Name, bundle.Game, p.Soldiers[i].ImageURL)
	}

	return p
}

// avatarImage resolves the player avatar through the cache, answering with
// the preloaded default avatar when the upstream image cannot be fetched.
func (b *Builder) avatarImage(ctx context.Context, url, userName string) string {
	if b.images == nil || url == "" {
		return url
	}
	cached, err := b.images.GetWithFallback(ctx, "avatar_"+userName, url, "default_avatar")
	if err != nil {
		b.log.Warnw("Avatar unavailable, using upstream URL", "user", userName, "error", err)
		return url
	}
	return cached
}

// cachedImage swaps an artwork URL for its cached data URI. Fetch failures
// fall back to the upstream URL so a card still renders.
func (b *Builder) cachedImage(ctx context.Context, kind, name, game, url string) string {
	if b.images == nil || url == "" {
		return url
	}
	key := fmt.Sprintf("%s_%s_%s", kind, name, game)
	cached, err := b.images.GetOrFetch(ctx, key, url)
	if err != nil {
		b.log.Warnw("Image cache miss, using upstream URL", "key", key, "error", err)
		return url
	}
	return cached
}

func (b *Builder) execute(name string, p page) (string, error) {
	var buf bytes.Buffer
	if err := b.tmpl.ExecuteTemplate(&buf, name, p); err != nil {
		return "", fmt.Errorf("render %s: %w", name, err)
	}
	return buf.String(), nil
}

// Main renders the career summary card with top weapon and vehicle slots.
func (b *Builder) Main(ctx context.Context, bundle *models.ReportBundle) (string, error) {
	return b.execute("main.html", b.newPage(ctx, bundle))
}

// Weapons renders the dedicated weapons report.
func (b *Builder) Weapons(ctx context.Context, bundle *models.ReportBundle) (string, error) {
	return b.execute("weapons.html", b.newPage(ctx, bundle))
}

// Vehicles renders the dedicated vehicles report.
func (b *Builder) Vehicles(ctx context.Context, bundle *models.ReportBundle) (string, error) {
	return b.execute("vehicles.html", b.newPage(ctx, bundle))
}

// Soldiers renders the specialists report.
func (b *Builder) Soldiers(ctx context.Context, bundle *models.ReportBundle) (string, error) {
	return b.execute("soldiers.html", b.newPage(ctx, bundle))
}

// Servers renders the server browser report.
func (b *Builder) Servers(ctx context.Context, bundle *models.ReportBundle) (string, error) {
	return b.execute("servers.html", b.newPage(ctx, bundle))
}
