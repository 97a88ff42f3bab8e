package ui

import (
	"strings"
	"testing"

	"fyne.io/fyne/v2/test"

	"github.com/piwi3910/sheathcalc/internal/model"
)

func TestInputFormRoundTrip(t *testing.T) {
	test.NewApp()

	in := model.DefaultInputs()
	in.Attachment = model.AttachmentShed
	in.ShedWidth = 12
	in.ShedDepth = 20
	in.ShedWallHeight = 8
	in.OverhangInches = 12.5

	f := newInputForm()
	f.Set(in)

	got, err := f.Read()
	if err != nil {
		t.Fatalf("Read returned error: %v", err)
	}
	if got != in {
		t.Errorf("expected %+v, got %+v", in, got)
	}
}

func TestInputFormEnablesSelectedAttachment(t *testing.T) {
	test.NewApp()
	f := newInputForm()

	if !f.shed[0].Disabled() || !f.porch[0].Disabled() {
		t.Error("attachment fields should start disabled")
	}

	f.attachment.SetSelected(model.AttachmentPorch.String())
	if !f.shed[0].Disabled() {
		t.Error("shed fields should stay disabled for a porch")
	}
	if f.porch[0].Disabled() {
		t.Error("porch fields should be enabled for a porch")
	}
}

func TestInputFormReadErrors(t *testing.T) {
	test.NewApp()
	f := newInputForm()
	f.Set(model.DefaultInputs())

	f.building[0].SetText("forty")
	f.building[1].SetText("")
	f.shed[0].SetText("")

	_, err := f.Read()
	if err == nil {
		t.Fatal("expected error for non-numeric input")
	}
	msg := err.Error()
	if !strings.Contains(msg, "Length (ft)") || !strings.Contains(msg, "Width (ft)") {
		t.Errorf("expected both building fields reported, got %q", msg)
	}
	if strings.Contains(msg, "Shed") {
		t.Errorf("blank attachment fields should read as zero, got %q", msg)
	}
}

func TestThemeForPreference(t *testing.T) {
	if th := themeForPreference("dark"); th.followSystem {
		t.Error("dark preference should pin the variant")
	}
	if th := themeForPreference("system"); !th.followSystem {
		t.Error("system preference should follow the system")
	}
	if th := themeForPreference("unknown"); !th.followSystem {
		t.Error("unknown preference should follow the system")
	}
}
