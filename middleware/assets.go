package middleware

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"io"
	"log"
	"os"
	"sync"
)

// Static assets referenced from the layout, relative to the working directory
const (
	CSSAsset     = "static/css/style.css"
	AppJSAsset   = "static/js/app.js"
	FaviconAsset = "static/images/favicon.svg"
)

var (
	assetVersions     map[string]string
	assetVersionsOnce sync.Once
)

// InitAssetVersions computes file hashes for cache busting at startup
func InitAssetVersions() {
	assetVersionsOnce.Do(func() {
		assetVersions = make(map[string]string)
		for _, path := range []string{CSSAsset, AppJSAsset, FaviconAsset} {
			version := computeFileHash(path)
			if version == "" {
				version = "1"
			}
			assetVersions[path] = version
			log.Printf("[INFO] Asset version initialized: %s=%s", path, version)
		}
	})
}

// computeFileHash returns the first 8 characters of the MD5 hash of a file
func computeFileHash(path string) string {
	file, err := os.Open(path)
	if err != nil {
		log.Printf("[WARNING] Failed to open file for hashing %s: %v", path, err)
		return ""
	}
	defer file.Close()

	hash := md5.New()
	if _, err := io.Copy(hash, file); err != nil {
		log.Printf("[WARNING] Failed to hash file %s: %v", path, err)
		return ""
	}

	return hex.EncodeToString(hash.Sum(nil))[:8]
}

// GetAssetVersion returns the version hash of a static asset, "1" when unknown.
// ctx is accepted for symmetry with the other template helpers.
func GetAssetVersion(ctx context.Context, path string) string {
	if version, ok := assetVersions[path]; ok {
		return version
	}
	return "1"
}

// GetCSSVersion returns the CSS file version hash for cache busting
func GetCSSVersion(ctx context.Context) string {
	return GetAssetVersion(ctx, CSSAsset)
}

// GetFaviconVersion returns the favicon file version hash for cache busting
func GetFaviconVersion(ctx context.Context) string {
	return GetAssetVersion(ctx, FaviconAsset)
}

// GetAppJSVersion returns the app.js file version hash for cache busting
func GetAppJSVersion(ctx context.Context) string {
	return GetAssetVersion(ctx, AppJSAsset)
}
