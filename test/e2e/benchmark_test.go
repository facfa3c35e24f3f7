package e2e_test

import (
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// generateNestedJSON creates a deeply nested JSON structure for benchmarking
func generateNestedJSON(depth int, width int) map[string]interface{} {
	if depth <= 0 {
		return map[string]interface{}{
			"leaf_value": "data",
			"count":      depth,
			"enabled":    true,
		}
	}

	result := make(map[string]interface{})
	for i := 0; i < width; i++ {
		key := fmt.Sprintf("nested_%d_%d", depth, i)
		result[key] = generateNestedJSON(depth-1, width)
	}
	return result
}

// generateWideJSON creates a JSON object with many fields at the same level
func generateWideJSON(fieldCount int) map[string]interface{} {
	result := make(map[string]interface{})
	for i := 0; i < fieldCount; i++ {
		switch i % 4 {
		case 0:
			result[fmt.Sprintf("string_field_%d", i)] = fmt.Sprintf("value_%d", i)
		case 1:
			result[fmt.Sprintf("int_field_%d", i)] = i
		case 2:
			result[fmt.Sprintf("bool_field_%d", i)] = i%2 == 0
		case 3:
			result[fmt.Sprintf("list_field_%d", i)] = []int{i, i + 1, i + 2}
		}
	}
	return result
}

func writeJSONFile(b *testing.B, dir string, v interface{}) string {
	b.Helper()
	data, err := json.Marshal(v)
	require.NoError(b, err)
	path := filepath.Join(dir, "bench_input.json")
	require.NoError(b, os.WriteFile(path, data, 0644))
	return path
}

func buildBenchBinary(b *testing.B) string {
	b.Helper()
	binPath := filepath.Join(b.TempDir(), "csonify")
	cmd := exec.Command("go", "build", "-o", binPath, "../..")
	output, err := cmd.CombinedOutput()
	require.NoError(b, err, "build failed: %s", output)
	return binPath
}

func BenchmarkConvert_DeepNesting(b *testing.B) {
	bin := buildBenchBinary(b)
	inputPath := writeJSONFile(b, b.TempDir(), generateNestedJSON(6, 3))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		cmd := exec.Command(bin, "-i", inputPath)
		cmd.Stdout = nil
		require.NoError(b, cmd.Run())
	}
}

func BenchmarkConvert_WideObject(b *testing.B) {
	bin := buildBenchBinary(b)
	inputPath := writeJSONFile(b, b.TempDir(), generateWideJSON(2000))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		cmd := exec.Command(bin, "-i", inputPath)
		cmd.Stdout = nil
		require.NoError(b, cmd.Run())
	}
}
