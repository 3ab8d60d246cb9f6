package content

import (
	"testing"
	"time"

	"personal-site/internal/model"

	"github.com/stretchr/testify/require"
)

const (
	imgA = `<div class="entry-image-inline"><img src="/media/entries/a.jpg" alt="Cap &amp; co" loading="lazy"><p class="image-caption-inline">Cap &amp; co</p></div>`
	imgB = `<div class="entry-image-inline"><img src="/media/entries/b.jpg" alt="" loading="lazy"></div>`
)

func sampleImages() []model.EntryImage {
	return []model.EntryImage{
		{ID: 1, Image: "entries/a.jpg", Caption: "Cap & co", Order: 1},
		{ID: 2, Image: "entries/b.jpg", Order: 0},
	}
}

func TestRenderWithoutImages(t *testing.T) {
	got := Render("Hello <b>\n\nWorld\nline [image:2] end", nil, "/media/")
	require.Equal(t, "<p>Hello &lt;b&gt;</p><p>World<br>line end</p>", got)

	require.Equal(t, "", Render("  \n ", nil, "/media/"))
	require.Equal(t, "", Render("[image:1]", nil, "/media/"))
}

func TestRenderWithMarkers(t *testing.T) {
	text := "Intro\n\n[image:1]\n\nMiddle [image 0] text\n\n[image:9]"
	got := Render(text, sampleImages(), "/media/")
	require.Equal(t, "<p>Intro</p>"+imgA+"<p>Middle "+imgB+" text</p>", got)
}

func TestRenderIgnoresNULInText(t *testing.T) {
	var got string
	require.NotPanics(t, func() { got = Render("[image:0] \x007\x00 tail", sampleImages(), "/media/") })
	require.Contains(t, got, imgB)
	require.Contains(t, got, "7 tail")
	require.NotContains(t, got, "\x00")
}

func TestRenderMarkerVariants(t *testing.T) {
	imgs := sampleImages()
	require.Equal(t, imgB, Render("[IMAGE:0]", imgs, "/media/"))
	require.Equal(t, imgB, Render("[Изображение с order=0]", imgs, "/media/"))
	require.Equal(t, imgA, Render("[image1]", imgs, "/media/"))
	// 單行換行分段
	require.Equal(t, "<p>a</p>"+imgB+"<p>b &amp; c</p>", Render("a\n[image:0]\nb & c", imgs, "/media/"))
}

func TestRenderAutoPlacement(t *testing.T) {
	imgs := []model.EntryImage{
		{Image: "entries/a.jpg", Caption: "Cap & co", Order: 0},
		{Image: "entries/b.jpg", Order: 5},
	}
	require.Equal(t, "<p>One</p>"+imgA+"<p>Two</p>"+imgB, Render("One\n\nTwo", imgs, "/media/"))
	require.Equal(t, "<p>One</p>"+imgA+"<p>Two</p>"+imgB, Render("One\nTwo", imgs, "/media/"))
	// 沒有段落時只輸出圖片
	require.Equal(t, imgA+imgB, Render("", imgs, "/media/"))
}

func TestRenderSameOrderUsesCreatedAt(t *testing.T) {
	now := time.Now()
	imgs := []model.EntryImage{
		{Image: "entries/b.jpg", Order: 0, CreatedAt: now},
		{Image: "entries/a.jpg", Caption: "Cap & co", Order: 0, CreatedAt: now.Add(-time.Minute)},
	}
	require.Equal(t, "<p>x</p>"+imgA+imgB, Render("x", imgs, "/media/"))
}
