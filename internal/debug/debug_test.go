package debug

import "testing"

func TestPrintfWithoutHookIsSilent(t *testing.T) {
	SetPrintHook(nil)
	if Enabled() {
		t.Fatal("Enabled() = true with no hook")
	}
	Printf("dropped %d", 1) // must not panic
}

func TestPrintfDeliversToHook(t *testing.T) {
	var got string
	SetPrintHook(func(msg string) { got = msg })
	defer SetPrintHook(nil)

	if !Enabled() {
		t.Fatal("Enabled() = false with hook installed")
	}
	Printf("unknown datum: %s", "Foo_1901")
	if got != "unknown datum: Foo_1901" {
		t.Errorf("hook got %q", got)
	}
}
