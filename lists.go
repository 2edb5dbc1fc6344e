package fastdeck

import "strings"

// listClasses turns bare <ul> and <li> tags into Bootstrap list-group
// markup with a transparent background so lists blend into cards.
var listClasses = strings.NewReplacer(
	"<ul>", `<ul class="list-group list-group-flush">`,
	"<li>", `<li class="list-group-item" style="background-color: transparent;" >`,
)

// beautifyLists applies listClasses to text. Tags that already carry
// attributes are left alone.
func beautifyLists(text string) string {
	return listClasses.Replace(text)
}
