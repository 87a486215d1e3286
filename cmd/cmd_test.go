package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/s0up4200/eandb/config"
	"github.com/s0up4200/eandb/eandb"
	"github.com/s0up4200/eandb/filter"
	"github.com/s0up4200/eandb/product"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	err := rootCmd.Execute()
	return out.String(), err
}

func TestClassifyCommand(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{[]string{"classify", "403", "JWT", "expired"}, "JWT_EXPIRED"},
		{[]string{"classify", "403", "Your account balance is empty"}, "EMPTY_BALANCE"},
		{[]string{"classify", "404", "Product not found: 123"}, "PRODUCT_NOT_FOUND"},
		{[]string{"classify", "400", "anything"}, "INVALID_BARCODE"},
		{[]string{"classify", "403", "Forbidden"}, "UNKNOWN"},
		{[]string{"classify", "500", "Internal error"}, "UNKNOWN"},
	}

	for _, tt := range tests {
		t.Run(strings.Join(tt.args[1:], " "), func(t *testing.T) {
			out, err := execute(t, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want+"\n", out)
		})
	}
}

func TestClassifyCommandInvalidCode(t *testing.T) {
	_, err := execute(t, "classify", "abc", "JWT expired")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid code")
}

func TestVersionCommand(t *testing.T) {
	SetVersion("1.2.3", "2026-01-02")
	t.Cleanup(func() { SetVersion("dev", "unknown") })

	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "eandb 1.2.3")
	assert.Contains(t, out, "built 2026-01-02")
}

func TestUpdateRejectsDevBuild(t *testing.T) {
	SetVersion("dev", "unknown")

	_, err := execute(t, "update", "--check")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "development build")
}

func TestReadBarcodes(t *testing.T) {
	input := "4006381333931\n\n  # comment\n 9780141036144 \n"

	t.Run("stdin", func(t *testing.T) {
		barcodes, err := readBarcodes(strings.NewReader(input), "-")
		require.NoError(t, err)
		assert.Equal(t, []string{"4006381333931", "9780141036144"}, barcodes)
	})

	t.Run("file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "codes.txt")
		require.NoError(t, os.WriteFile(path, []byte(input), 0o600))

		barcodes, err := readBarcodes(nil, path)
		require.NoError(t, err)
		assert.Equal(t, []string{"4006381333931", "9780141036144"}, barcodes)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := readBarcodes(nil, filepath.Join(t.TempDir(), "missing.txt"))
		require.Error(t, err)
	})
}

func TestSetupLogger(t *testing.T) {
	t.Cleanup(func() { zerolog.SetGlobalLevel(zerolog.TraceLevel) })

	tests := []struct {
		level string
		want  zerolog.Level
	}{
		{"trace", zerolog.TraceLevel},
		{"debug", zerolog.DebugLevel},
		{"info", zerolog.InfoLevel},
		{"WARN", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"bogus", zerolog.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			setupLogger(config.LoggingConfig{Level: tt.level, Format: "json"})
			assert.Equal(t, tt.want, zerolog.GlobalLevel())
		})
	}
}

func TestFilterResults(t *testing.T) {
	logger = zerolog.Nop()
	rootCmd.SetContext(context.Background())
	filters = filter.NewManager()
	require.NoError(t, filters.RegisterFilters(map[string]string{"english": `hasTitle("en")`}))
	t.Cleanup(func() { filters = nil })

	found := func(barcode, lang, title string) eandb.Result {
		p := product.New(barcode)
		p.Titles = product.MultilingualText{lang: title}
		return eandb.Result{Barcode: barcode, Response: &eandb.SuccessResponse{Balance: 10, Product: p}}
	}
	results := []eandb.Result{
		found("1", "en", "Bread"),
		{Barcode: "2", Response: &eandb.ErrorResponse{Status: 404, Detail: eandb.ErrorDetail{Code: 404, Description: "Product not found: 2"}}},
		found("3", "de", "Brot"),
		found("4", "en", "Butter"),
	}

	filterExpr = "english"
	t.Cleanup(func() { filterExpr = "" })

	filtered, err := filterResults(rootCmd, results)
	require.NoError(t, err)
	require.Len(t, filtered, 2)
	assert.Equal(t, "1", filtered[0].Barcode)
	assert.Equal(t, "4", filtered[1].Barcode)

	filterExpr = "Title =="
	_, err = filterResults(rootCmd, results)
	require.Error(t, err)
}
