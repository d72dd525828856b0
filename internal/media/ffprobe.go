package media

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"os/exec"
	"strconv"

	"github.com/llehouerou/reel/internal/geom"
)

type ffprobeResult struct {
	Streams []struct {
		CodecType string `json:"codec_type"`
		Width     int    `json:"width"`
		Height    int    `json:"height"`
		Tags      struct {
			Rotate string `json:"rotate"`
		} `json:"tags"`
		SideDataList []struct {
			Rotation float64 `json:"rotation"`
		} `json:"side_data_list"`
	} `json:"streams"`
}

// FFProbe measures the first video stream of path. Rotated streams report
// their displayed size.
func FFProbe(ctx context.Context, path string) (geom.Size, error) {
	ffprobe, err := exec.LookPath("ffprobe")
	if err != nil {
		return geom.Size{}, ErrProbeNotFound
	}

	cmd := exec.CommandContext(ctx, ffprobe,
		"-v", "quiet",
		"-print_format", "json",
		"-show_streams",
		"-select_streams", "v:0",
		path,
	)
	cmd.Stdin = nil

	output, err := cmd.Output()
	if err != nil {
		return geom.Size{}, fmt.Errorf("ffprobe failed: %w", err)
	}
	return parseFFProbe(output)
}

func parseFFProbe(output []byte) (geom.Size, error) {
	var result ffprobeResult
	if err := json.Unmarshal(output, &result); err != nil {
		return geom.Size{}, fmt.Errorf("parsing ffprobe output: %w", err)
	}

	for _, s := range result.Streams {
		if s.CodecType != "video" || s.Width <= 0 || s.Height <= 0 {
			continue
		}
		size := geom.Size{Width: float64(s.Width), Height: float64(s.Height)}

		rotation, _ := strconv.ParseFloat(s.Tags.Rotate, 64)
		for _, sd := range s.SideDataList {
			if sd.Rotation != 0 {
				rotation = sd.Rotation
			}
		}
		if quarter := int(math.Round(rotation/90)) % 2; quarter != 0 {
			size.Width, size.Height = size.Height, size.Width
		}
		return size, nil
	}
	return geom.Size{}, ErrNoSize
}
