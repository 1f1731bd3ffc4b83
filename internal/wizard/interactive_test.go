package wizard

import "testing"

func TestNeedsTrack(t *testing.T) {
	if !NeedsTrack(nil) {
		t.Error("NeedsTrack(nil) = false, want true")
	}
	if !NeedsTrack([]string{}) {
		t.Error("NeedsTrack(empty) = false, want true")
	}
	if NeedsTrack([]string{"daft", "punk"}) {
		t.Error("NeedsTrack with args = true, want false")
	}
}

func TestSetEnabledDisablesInteraction(t *testing.T) {
	i := NewInteractive()
	i.SetEnabled(false)

	if i.CanInteract() {
		t.Error("disabled handler reports CanInteract")
	}
	sel, err := i.PromptSearch()
	if sel != nil || err != nil {
		t.Errorf("PromptSearch on disabled handler = (%v, %v), want (nil, nil)", sel, err)
	}
}
