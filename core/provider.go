package core

// ProviderCatalog enumerates deploy providers. Implementations must tolerate
// a missing or empty directory by returning an empty list.
type ProviderCatalog interface {
	List(dir string) []string
	DisplayName(id, dir string) string
}

// ProviderResult is the outcome of a provider picker: either
// ProviderSelected or ProviderCancelled.
type ProviderResult interface {
	isProviderResult()
}

// ProviderSelected carries the raw provider identifier, never its label.
type ProviderSelected struct {
	ID string
}

// ProviderCancelled is produced by the cancel button, the cancel key and
// backdrop clicks alike.
type ProviderCancelled struct{}

func (ProviderSelected) isProviderResult()  {}
func (ProviderCancelled) isProviderResult() {}

// DialogSize bounds a centered dialog. Width is the preferred panel width in
// cells; the percentages cap it relative to the dashboard body.
type DialogSize struct {
	Width        int
	MaxWidthPct  int
	MaxHeightPct int
}

func DefaultDialogSize() DialogSize {
	return DialogSize{Width: 50, MaxWidthPct: 80, MaxHeightPct: 70}
}

// Panel returns the panel width and height limit for a body of the given size.
func (d DialogSize) Panel(width, height int) (int, int) {
	w := d.Width
	if limit := width * d.MaxWidthPct / 100; limit < w {
		w = limit
	}
	return max(1, w), max(1, height*d.MaxHeightPct/100)
}
