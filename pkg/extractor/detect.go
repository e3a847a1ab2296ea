package extractor

import (
	"context"
	"encoding/json"
	"fmt"
	"os/exec"
	"time"
)

// detectTimeout bounds how long an extractor binary may take to answer
// the InfoFlag query. Misbehaving binaries are killed after this.
const detectTimeout = 5 * time.Second

// Detect queries an extractor binary for its Info block.
func Detect(binaryPath string) (*Info, error) {
	ctx, cancel := context.WithTimeout(context.Background(), detectTimeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, binaryPath, InfoFlag)
	output, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("failed to query extractor: %w", err)
	}

	var info Info
	if err := json.Unmarshal(output, &info); err != nil {
		return nil, fmt.Errorf("failed to parse extractor info: %w", err)
	}

	if info.Name == "" {
		return nil, fmt.Errorf("extractor info has no name")
	}
	if info.ProtocolVersion == "" {
		return nil, fmt.Errorf("extractor %s reports no protocol version", info.Name)
	}

	return &info, nil
}
