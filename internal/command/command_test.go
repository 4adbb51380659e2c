package command

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

type recorder struct {
	calls []string
}

func (r *recorder) Open(id string)         { r.calls = append(r.calls, "open:"+id) }
func (r *recorder) Close(id string)        { r.calls = append(r.calls, "close:"+id) }
func (r *recorder) Minimize(id string)     { r.calls = append(r.calls, "minimize:"+id) }
func (r *recorder) Restore(id string)      { r.calls = append(r.calls, "restore:"+id) }
func (r *recorder) ToggleZoom(id string)   { r.calls = append(r.calls, "zoom:"+id) }
func (r *recorder) ToggleShade(id string)  { r.calls = append(r.calls, "shade:"+id) }
func (r *recorder) MinimizeAll()           { r.calls = append(r.calls, "minimize-all") }
func (r *recorder) Tile()                  { r.calls = append(r.calls, "tile") }
func (r *recorder) TidyIcons()             { r.calls = append(r.calls, "tidy") }
func (r *recorder) ToggleGrid()            { r.calls = append(r.calls, "grid") }
func (r *recorder) Notify(kind NoticeKind) { r.calls = append(r.calls, "notify:"+kind.String()) }
func (r *recorder) Quit()                  { r.calls = append(r.calls, "quit") }

func TestDispatch(t *testing.T) {
	cmds := []Command{
		OpenWindow{ID: "about"},
		CloseWindow{ID: "about"},
		MinimizeWindow{ID: "projects"},
		RestoreWindow{ID: "projects"},
		ToggleZoom{ID: "contact"},
		ToggleShade{ID: "contact"},
		MinimizeAll{},
		Tile{},
		TidyIcons{},
		ShowGrid{},
		Notify{Kind: NoticeRestart},
		Quit{},
		nil,
	}
	r := &recorder{}
	for _, c := range cmds {
		Dispatch(c, r)
	}

	want := []string{
		"open:about", "close:about", "minimize:projects", "restore:projects",
		"zoom:contact", "shade:contact", "minimize-all", "tile", "tidy", "grid",
		"notify:restart", "quit",
	}
	if diff := cmp.Diff(want, r.calls); diff != "" {
		t.Errorf("dispatch mismatch (-want +got):\n%s", diff)
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		in      string
		want    Command
		wantErr bool
	}{
		{in: "open about", want: OpenWindow{ID: "about"}},
		{in: "  ZOOM projects ", want: ToggleZoom{ID: "projects"}},
		{in: "arrange", want: Tile{}},
		{in: "minimize-all", want: MinimizeAll{}},
		{in: "notify", want: Notify{Kind: NoticeAboutSite}},
		{in: "notify shutdown", want: Notify{Kind: NoticeShutdown}},
		{in: "open", wantErr: true},
		{in: "notify party", wantErr: true},
		{in: "launch rockets", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := Parse(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Errorf("Parse(%q) expected error, got %v", tt.in, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse(%q) error: %v", tt.in, err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Parse(%q) mismatch (-want +got):\n%s", tt.in, diff)
			}
		})
	}
}

func TestNameRoundTrips(t *testing.T) {
	for _, c := range []Command{OpenWindow{ID: "about"}, Tile{}, Notify{Kind: NoticeSleep}, Quit{}} {
		parsed, err := Parse(Name(c))
		if err != nil {
			t.Fatalf("Parse(Name(%v)) error: %v", c, err)
		}
		if parsed != c {
			t.Errorf("round trip of %v gave %v", c, parsed)
		}
	}
}
