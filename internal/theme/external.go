package theme

import (
	"context"
	"fmt"
	"image/color"
	"os/exec"

	"github.com/hashicorp/go-hclog"
	goplugin "github.com/hashicorp/go-plugin"

	"github.com/madder-sh/madder/internal/colour"
	"github.com/madder-sh/madder/internal/security"
	"github.com/madder-sh/madder/pkg/extractor"
)

// ExternalExtractor is a PaletteExtractor backed by a standalone extractor
// binary speaking the go-plugin protocol. The binary is queried for its
// info block and checked for protocol compatibility up front; the plugin
// process itself is only started on the first Extract call.
type ExternalExtractor struct {
	path    string
	info    extractor.Info
	theme   colour.ThemeType
	colours int
	logger  hclog.Logger

	client    *goplugin.Client
	rpcClient *extractor.ExtractorRPCClient
}

// NewExternalExtractor detects and validates the extractor binary at path.
func NewExternalExtractor(path string, logger hclog.Logger) (*ExternalExtractor, error) {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}

	if err := security.ValidateExtractorPath(path); err != nil {
		return nil, err
	}

	info, err := extractor.Detect(path)
	if err != nil {
		return nil, fmt.Errorf("failed to detect extractor: %w", err)
	}

	if _, err := extractor.IsCompatible(info.ProtocolVersion); err != nil {
		return nil, fmt.Errorf("extractor %s: %w", info.Name, err)
	}

	return &ExternalExtractor{
		path:    path,
		info:    *info,
		theme:   colour.ThemeAuto,
		colours: colour.DefaultExtractorConfig().ColorCount,
		logger:  logger,
	}, nil
}

// Info returns the extractor's metadata block.
func (e *ExternalExtractor) Info() extractor.Info {
	return e.info
}

// WithThemeType forces the light/dark disposition instead of detecting it
// from the dominant colour.
func (e *ExternalExtractor) WithThemeType(t colour.ThemeType) *ExternalExtractor {
	e.theme = t
	return e
}

// WithColourCount sets how many colours are requested from the binary.
func (e *ExternalExtractor) WithColourCount(n int) *ExternalExtractor {
	e.colours = n
	return e
}

// Extract asks the extractor binary for a palette and materialises the
// fixed role set from it.
func (e *ExternalExtractor) Extract(ctx context.Context, imagePath string) (*colour.NamedPalette, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	client, err := e.getRPCClient()
	if err != nil {
		return nil, err
	}

	req := extractor.Request{
		ImagePath: imagePath,
		Colours:   e.colours,
		Mode:      e.theme.String(),
	}

	data, err := client.Extract(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("extractor %s failed: %w", e.info.Name, err)
	}

	named, err := paletteFromData(data, e.theme)
	if err != nil {
		return nil, fmt.Errorf("extractor %s: %w", e.info.Name, err)
	}

	e.logger.Debug("palette extracted",
		"extractor", e.info.Name,
		"image", imagePath,
		"theme", named.ThemeType.String(),
		"colours", len(named.Source))

	return named, nil
}

// Close shuts down the plugin process if one was started.
func (e *ExternalExtractor) Close() {
	if e.client != nil {
		e.client.Kill()
		e.client = nil
		e.rpcClient = nil
	}
}

func (e *ExternalExtractor) getRPCClient() (*extractor.ExtractorRPCClient, error) {
	if e.rpcClient != nil {
		return e.rpcClient, nil
	}

	e.client = goplugin.NewClient(&goplugin.ClientConfig{
		HandshakeConfig: extractor.Handshake,
		Plugins: map[string]goplugin.Plugin{
			extractor.PluginName: &extractor.ExtractorPlugin{},
		},
		Cmd:              exec.Command(e.path),
		AllowedProtocols: []goplugin.Protocol{goplugin.ProtocolNetRPC},
		Logger:           e.logger.Named("extractor"),
	})

	rpcClient, err := e.client.Client()
	if err != nil {
		e.client.Kill()
		e.client = nil
		return nil, fmt.Errorf("failed to get RPC client: %w", err)
	}

	raw, err := rpcClient.Dispense(extractor.PluginName)
	if err != nil {
		e.client.Kill()
		e.client = nil
		return nil, fmt.Errorf("failed to dispense extractor: %w", err)
	}

	client, ok := raw.(*extractor.ExtractorRPCClient)
	if !ok {
		e.client.Kill()
		e.client = nil
		return nil, fmt.Errorf("extractor returned unexpected client type %T", raw)
	}

	e.rpcClient = client
	return client, nil
}

// paletteFromData converts an extractor's wire palette into a materialised
// named palette. A theme type returned by the extractor overrides the
// requested one; extractors that do not care leave it empty.
func paletteFromData(data *extractor.PaletteData, requested colour.ThemeType) (*colour.NamedPalette, error) {
	if data == nil || len(data.Colours) == 0 {
		return nil, fmt.Errorf("extractor returned no colours")
	}

	colors := make([]color.Color, len(data.Colours))
	weights := make([]float64, len(data.Colours))
	weighted := false
	for i, c := range data.Colours {
		colors[i] = color.RGBA{R: c.R, G: c.G, B: c.B, A: 255}
		weights[i] = c.Weight
		if c.Weight > 0 {
			weighted = true
		}
	}

	var palette *colour.Palette
	if weighted {
		palette = colour.NewPaletteWithWeights(colors, weights)
	} else {
		palette = colour.NewPalette(colors)
	}

	themeType := requested
	if data.ThemeType != "" {
		parsed, err := colour.ParseThemeType(data.ThemeType)
		if err != nil {
			return nil, fmt.Errorf("invalid theme type in palette data: %w", err)
		}
		themeType = parsed
	}

	return colour.Materialise(palette, themeType, colour.DefaultMaterialiseConfig())
}
