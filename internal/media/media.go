// Package media 負責上傳圖片的驗證、儲存與縮圖
package media

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

const (
	// MaxImageSize 單張上傳圖片上限 10 MiB
	MaxImageSize = 10 << 20
	// ThumbnailWidth 縮圖寬度 (px)
	ThumbnailWidth = 480
	// MaxImagePixels 解碼前的像素上限，避免小檔案展開成巨大點陣
	MaxImagePixels = 40_000_000

	thumbDir    = "thumbs"
	jpegQuality = 85
)

var (
	ErrUnsupportedImage = errors.New("unsupported image type, allowed: jpg, jpeg, png, gif, webp")
	ErrImageTooLarge    = errors.New("image exceeds the 10 MiB limit")
	ErrInvalidImage     = errors.New("file is not a valid image")
	ErrImageDimensions  = errors.New("image dimensions are too large")
)

var allowedExt = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

var (
	newName   = func() string { return uuid.NewString() }
	maxPixels = MaxImagePixels
)

func checkDimensions(cfg image.Config) error {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return ErrInvalidImage
	}
	if int64(cfg.Width)*int64(cfg.Height) > int64(maxPixels) {
		return ErrImageDimensions
	}
	return nil
}

// Storage 將檔案存放在 Root 底下，對外只使用以 / 分隔的相對路徑
type Storage struct {
	Root string
}

func NewStorage(root string) *Storage {
	return &Storage{Root: root}
}

// Path 回傳相對路徑在磁碟上的位置
func (s *Storage) Path(rel string) string {
	return filepath.Join(s.Root, filepath.FromSlash(rel))
}

// Save 驗證並儲存上傳檔案至 dir (例如 "entries")，回傳相對路徑
func (s *Storage) Save(dir string, fh *multipart.FileHeader) (string, error) {
	ext := strings.ToLower(filepath.Ext(fh.Filename))
	if !allowedExt[ext] {
		return "", ErrUnsupportedImage
	}
	if fh.Size > MaxImageSize {
		return "", ErrImageTooLarge
	}

	f, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("Save: %w", err)
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, MaxImageSize+1))
	if err != nil {
		return "", fmt.Errorf("Save: %w", err)
	}
	if len(data) > MaxImageSize {
		return "", ErrImageTooLarge
	}
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return "", ErrInvalidImage
	}
	if err := checkDimensions(cfg); err != nil {
		return "", err
	}

	rel := path.Join(dir, newName()+ext)
	if err := s.write(rel, data); err != nil {
		return "", fmt.Errorf("Save: %w", err)
	}
	return rel, nil
}

// Thumbnail 產生寬度 ThumbnailWidth 的縮圖，原圖較窄時不放大；回傳縮圖相對路徑
func (s *Storage) Thumbnail(rel string) (string, error) {
	f, err := os.Open(s.Path(rel))
	if err != nil {
		return "", fmt.Errorf("Thumbnail: %w", err)
	}
	defer f.Close()

	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		return "", fmt.Errorf("Thumbnail: %w", err)
	}
	if err := checkDimensions(cfg); err != nil {
		return "", fmt.Errorf("Thumbnail: %w", err)
	}
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return "", fmt.Errorf("Thumbnail: %w", err)
	}
	src, _, err := image.Decode(f)
	if err != nil {
		return "", fmt.Errorf("Thumbnail: %w", err)
	}

	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	if w > ThumbnailWidth {
		h = h * ThumbnailWidth / w
		w = ThumbnailWidth
	}
	if h < 1 {
		h = 1
	}
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Over, nil)

	var buf bytes.Buffer
	ext := strings.ToLower(path.Ext(rel))
	out := strings.TrimSuffix(path.Join(thumbDir, rel), path.Ext(rel))
	if ext == ".png" {
		err = png.Encode(&buf, dst)
		out += ".png"
	} else {
		err = jpeg.Encode(&buf, dst, &jpeg.Options{Quality: jpegQuality})
		out += ".jpg"
	}
	if err != nil {
		return "", fmt.Errorf("Thumbnail: %w", err)
	}
	if err := s.write(out, buf.Bytes()); err != nil {
		return "", fmt.Errorf("Thumbnail: %w", err)
	}
	return out, nil
}

// Remove 刪除檔案，檔案不存在時忽略
func (s *Storage) Remove(rel string) error {
	if rel == "" {
		return nil
	}
	if err := os.Remove(s.Path(rel)); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

func (s *Storage) write(rel string, data []byte) error {
	full := s.Path(rel)
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return err
	}
	return os.WriteFile(full, data, 0o644)
}
