// Package content 將條目內文轉成 HTML 片段，並依 order 插入圖片
package content

import (
	"fmt"
	"html"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"personal-site/internal/model"
)

// 支援 [image:N]、[image N]、[imageN] 與 [Изображение с order=N]
var markerPattern = regexp.MustCompile(`(?i)\[(?:image[:\s]*(\d+)|Изображение\s+с\s+order[:\s]*=?\s*(\d+))\]`)

// 同上，但一併吃掉後方空白，用於沒有圖片時移除標記
var markerStripPattern = regexp.MustCompile(`(?i)\[(?:image[:\s]*\d+|Изображение\s+с\s+order[:\s]*=?\s*\d+)\]\s*`)

// 內文中的圖片佔位符，NUL 不會出現在表單輸入中
var placeholderPattern = regexp.MustCompile("\x00(\\d+)\x00")

// Render 產生條目內文的 HTML。文字一律跳脫；mediaURL 為圖片路徑前綴 (例如 "/media/")
func Render(text string, images []model.EntryImage, mediaURL string) string {
	if len(images) == 0 {
		return renderPlain(text)
	}

	byOrder := groupByOrder(images)
	imageHTML := func(order int) string {
		var b strings.Builder
		for _, img := range byOrder[order] {
			writeImage(&b, img, mediaURL)
		}
		return b.String()
	}

	if markerPattern.MatchString(text) {
		return renderWithMarkers(text, imageHTML)
	}
	return renderAuto(text, byOrder, imageHTML)
}

func renderPlain(text string) string {
	s := html.EscapeString(text)
	s = markerStripPattern.ReplaceAllString(s, "")
	s = strings.ReplaceAll(s, "\n\n", "</p><p>")
	s = strings.ReplaceAll(s, "\n", "<br>")
	if strings.TrimSpace(s) == "" {
		return ""
	}
	return "<p>" + s + "</p>"
}

func renderWithMarkers(text string, imageHTML func(int) string) string {
	// NUL 保留給圖片佔位符
	text = strings.ReplaceAll(text, "\x00", "")
	var blocks []string
	processed := markerPattern.ReplaceAllStringFunc(text, func(m string) string {
		sub := markerPattern.FindStringSubmatch(m)
		n := sub[1]
		if n == "" {
			n = sub[2]
		}
		order, err := strconv.Atoi(n)
		if err != nil {
			return ""
		}
		h := imageHTML(order)
		if h == "" {
			return ""
		}
		blocks = append(blocks, h)
		return fmt.Sprintf("\x00%d\x00", len(blocks)-1)
	})

	var out strings.Builder
	for _, p := range splitParagraphs(processed) {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}

		var parts []string
		hasText := false
		last := 0
		for _, loc := range placeholderPattern.FindAllStringSubmatchIndex(p, -1) {
			if chunk := p[last:loc[0]]; strings.TrimSpace(chunk) != "" {
				parts = append(parts, escapeLines(chunk))
				hasText = true
			}
			idx, _ := strconv.Atoi(p[loc[2]:loc[3]])
			parts = append(parts, blocks[idx])
			last = loc[1]
		}
		if chunk := p[last:]; strings.TrimSpace(chunk) != "" {
			parts = append(parts, escapeLines(chunk))
			hasText = true
		}

		if len(parts) == 0 {
			continue
		}
		if hasText {
			out.WriteString("<p>" + strings.Join(parts, "") + "</p>")
		} else {
			out.WriteString(strings.Join(parts, ""))
		}
	}
	return out.String()
}

// renderAuto 將 order 為 i 的圖片放在第 i 段之後，超出段落數的放在最後
func renderAuto(text string, byOrder map[int][]model.EntryImage, imageHTML func(int) string) string {
	var paragraphs []string
	for _, p := range splitParagraphs(text) {
		if p = strings.TrimSpace(p); p != "" {
			paragraphs = append(paragraphs, escapeLines(p))
		}
	}

	var out strings.Builder
	for i, p := range paragraphs {
		out.WriteString("<p>" + p + "</p>")
		out.WriteString(imageHTML(i))
	}

	orders := make([]int, 0, len(byOrder))
	for order := range byOrder {
		orders = append(orders, order)
	}
	sort.Ints(orders)
	for _, order := range orders {
		if order >= len(paragraphs) {
			out.WriteString(imageHTML(order))
		}
	}
	return out.String()
}

// splitParagraphs 以空行分段，沒有空行時改以單一換行分段
func splitParagraphs(text string) []string {
	paragraphs := strings.Split(text, "\n\n")
	if len(paragraphs) == 1 && strings.TrimSpace(paragraphs[0]) != "" {
		paragraphs = strings.Split(text, "\n")
	}
	return paragraphs
}

func escapeLines(s string) string {
	return strings.ReplaceAll(html.EscapeString(s), "\n", "<br>")
}

func groupByOrder(images []model.EntryImage) map[int][]model.EntryImage {
	sorted := make([]model.EntryImage, len(images))
	copy(sorted, images)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Order != sorted[j].Order {
			return sorted[i].Order < sorted[j].Order
		}
		return sorted[i].CreatedAt.Before(sorted[j].CreatedAt)
	})
	out := make(map[int][]model.EntryImage)
	for _, img := range sorted {
		out[img.Order] = append(out[img.Order], img)
	}
	return out
}

func writeImage(b *strings.Builder, img model.EntryImage, mediaURL string) {
	caption := html.EscapeString(img.Caption)
	b.WriteString(`<div class="entry-image-inline">`)
	fmt.Fprintf(b, `<img src="%s" alt="%s" loading="lazy">`, html.EscapeString(mediaURL+img.Image), caption)
	if img.Caption != "" {
		fmt.Fprintf(b, `<p class="image-caption-inline">%s</p>`, caption)
	}
	b.WriteString(`</div>`)
}
