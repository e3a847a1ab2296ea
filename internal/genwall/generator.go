// Package genwall generates wallpapers with Google's GenAI image models.
// The backend and model come from the persisted selection record; output
// lands in the wallpaper directory under a deterministic name so repeated
// prompts reuse the file instead of paying for another generation.
package genwall

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/go-hclog"
	"google.golang.org/genai"

	"github.com/madder-sh/madder/internal/state"
)

// DefaultModel is used when the selection record carries no model.
const DefaultModel = "gemini-2.5-flash-image"

const (
	// wallpaperSuffix steers models toward edge-to-edge desktop output.
	wallpaperSuffix = ", high quality desktop wallpaper, edge-to-edge composition, full bleed, seamless edges, no borders, no frames"

	// negativePrompt lists artifacts to avoid. Only Vertex AI accepts
	// negative prompts; on the Gemini API it is silently unsupported.
	negativePrompt = "white borders, black borders, frames, padding, margins, letterbox, pillarbox, black bars, vignette edges, canvas texture, matting"
)

// Generator produces wallpaper images from text prompts.
type Generator struct {
	store  state.Store
	logger hclog.Logger

	dir         string
	aspectRatio string
	imageSize   string
	project     string
	location    string
	force       bool
	plain       bool
}

// New creates a generator writing into dir.
func New(store state.Store, dir string, logger hclog.Logger) *Generator {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &Generator{
		store:       store,
		logger:      logger,
		dir:         dir,
		aspectRatio: "16:9",
	}
}

// WithAspectRatio sets the requested aspect ratio, default 16:9.
func (g *Generator) WithAspectRatio(ratio string) *Generator {
	if ratio != "" {
		g.aspectRatio = ratio
	}
	return g
}

// WithImageSize requests a specific output size. Only the Imagen 4
// standard and ultra models honour it.
func (g *Generator) WithImageSize(size string) *Generator {
	g.imageSize = size
	return g
}

// WithVertexProject sets the Vertex AI project and location, overriding
// the GOOGLE_CLOUD_PROJECT and GOOGLE_CLOUD_LOCATION environment.
func (g *Generator) WithVertexProject(project, location string) *Generator {
	g.project = project
	g.location = location
	return g
}

// WithForce regenerates even when the output file already exists.
func (g *Generator) WithForce(force bool) *Generator {
	g.force = force
	return g
}

// WithPlainPrompt sends the prompt verbatim without the wallpaper suffix.
func (g *Generator) WithPlainPrompt(plain bool) *Generator {
	g.plain = plain
	return g
}

// Filename returns the deterministic output name for a prompt and model.
func Filename(prompt, model string) string {
	hash := sha256.Sum256([]byte(prompt + model))
	return "genai-" + hex.EncodeToString(hash[:])[:16] + ".png"
}

// Generate produces a wallpaper for the prompt and returns its path. An
// existing file for the same prompt and model is reused unless force is
// set.
func (g *Generator) Generate(ctx context.Context, prompt string) (string, error) {
	if strings.TrimSpace(prompt) == "" {
		return "", fmt.Errorf("prompt must not be empty")
	}

	record, err := g.store.Load()
	if err != nil {
		return "", fmt.Errorf("failed to load generation record: %w", err)
	}
	model := record.Model
	if model == "" {
		model = DefaultModel
	}

	outputPath := filepath.Join(g.dir, Filename(prompt, model))
	if !g.force {
		if _, err := os.Stat(outputPath); err == nil {
			g.logger.Info("reusing generated wallpaper", "path", outputPath, "model", model)
			return outputPath, nil
		}
	}

	client, err := g.newClient(ctx, record.Backend)
	if err != nil {
		return "", err
	}

	fullPrompt := prompt
	if !g.plain {
		fullPrompt += wallpaperSuffix
	}

	g.logger.Info("generating wallpaper",
		"backend", record.Backend,
		"model", model,
		"prompt", prompt)

	var imageBytes []byte
	if usesGenerateContent(model) {
		imageBytes, err = g.generateWithGemini(ctx, client, model, fullPrompt)
	} else {
		imageBytes, err = g.generateWithImagen(ctx, client, model, fullPrompt)
	}
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(g.dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create wallpaper directory: %w", err)
	}
	if err := os.WriteFile(outputPath, imageBytes, 0644); err != nil {
		return "", fmt.Errorf("failed to write generated wallpaper: %w", err)
	}

	g.logger.Info("wallpaper generated", "path", outputPath, "bytes", len(imageBytes))
	return outputPath, nil
}

// newClient builds the GenAI client for the selected backend, validating
// its credentials before any network traffic.
func (g *Generator) newClient(ctx context.Context, backend state.Backend) (*genai.Client, error) {
	cfg := &genai.ClientConfig{}

	switch backend {
	case state.BackendVertexAI:
		cfg.Backend = genai.BackendVertexAI
		cfg.Project = g.project
		if cfg.Project == "" {
			cfg.Project = os.Getenv("GOOGLE_CLOUD_PROJECT")
		}
		cfg.Location = g.location
		if cfg.Location == "" {
			cfg.Location = os.Getenv("GOOGLE_CLOUD_LOCATION")
		}
		if cfg.Project == "" || cfg.Location == "" {
			return nil, fmt.Errorf("vertex-ai backend needs a project and location (--project/--location flags or GOOGLE_CLOUD_PROJECT/GOOGLE_CLOUD_LOCATION)")
		}
	default:
		cfg.Backend = genai.BackendGeminiAPI
		apiKey := os.Getenv("GOOGLE_API_KEY")
		if apiKey == "" {
			return nil, fmt.Errorf("GOOGLE_API_KEY is required for the gemini-api backend (create one at https://aistudio.google.com/api-keys)")
		}
		cfg.APIKey = apiKey
	}

	client, err := genai.NewClient(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create GenAI client: %w", err)
	}
	return client, nil
}

// usesGenerateContent reports whether the model generates images through
// the content API. Gemini image models do; the Imagen family uses the
// dedicated GenerateImages call.
func usesGenerateContent(model string) bool {
	return strings.HasPrefix(model, "gemini")
}

// supportsImageSize reports whether the model accepts an explicit output
// size.
func supportsImageSize(model string) bool {
	return model == "imagen-4.0-generate-001" || model == "imagen-4.0-ultra-generate-001"
}

func (g *Generator) generateWithImagen(ctx context.Context, client *genai.Client, model, prompt string) ([]byte, error) {
	cfg := &genai.GenerateImagesConfig{
		NumberOfImages: 1,
		AspectRatio:    g.aspectRatio,
		OutputMIMEType: "image/png",
	}
	if g.imageSize != "" && supportsImageSize(model) {
		cfg.ImageSize = g.imageSize
	}
	if client.ClientConfig().Backend == genai.BackendVertexAI {
		cfg.NegativePrompt = negativePrompt
	}

	response, err := client.Models.GenerateImages(ctx, model, prompt, cfg)
	if err != nil {
		return nil, fmt.Errorf("image generation failed: %w", err)
	}
	if len(response.GeneratedImages) == 0 {
		return nil, fmt.Errorf("no images in response")
	}

	generated := response.GeneratedImages[0]
	if generated.RAIFilteredReason != "" {
		return nil, fmt.Errorf("image was filtered by the safety system: %s", generated.RAIFilteredReason)
	}
	if generated.Image == nil || len(generated.Image.ImageBytes) == 0 {
		return nil, fmt.Errorf("response carries no image data")
	}
	return generated.Image.ImageBytes, nil
}

func (g *Generator) generateWithGemini(ctx context.Context, client *genai.Client, model, prompt string) ([]byte, error) {
	cfg := &genai.GenerateContentConfig{
		ResponseModalities: []string{"Image"},
	}

	// The content API has no aspect-ratio parameter; it goes into the
	// prompt instead.
	contents := genai.Text(fmt.Sprintf("Generate an image with aspect ratio %s: %s", g.aspectRatio, prompt))

	response, err := client.Models.GenerateContent(ctx, model, contents, cfg)
	if err != nil {
		return nil, fmt.Errorf("image generation failed: %w", err)
	}
	if len(response.Candidates) == 0 || response.Candidates[0].Content == nil {
		return nil, fmt.Errorf("no image data in response")
	}
	for _, part := range response.Candidates[0].Content.Parts {
		if part.InlineData != nil && len(part.InlineData.Data) > 0 {
			return part.InlineData.Data, nil
		}
	}
	return nil, fmt.Errorf("no inline image data in response")
}
