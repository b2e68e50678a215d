package material

import (
	"bytes"
	"errors"
	"testing"

	"github.com/Carmen-Shannon/oxy-globe/engine/texture"
)

func TestChannels(t *testing.T) {
	cs := Channels()
	if len(cs) != 5 {
		t.Fatalf("Channels: got %d, want 5", len(cs))
	}
	want := []string{"diffuse", "specular", "normal", "emission", "transparency"}
	for i, c := range cs {
		if c.String() != want[i] {
			t.Fatalf("Channel(%d).String: got %s, want %s", i, c, want[i])
		}
	}
	if Channel(9).Valid() || Channel(-1).Valid() {
		t.Fatal("Valid: out of range channels should be invalid")
	}
}

func TestDefaultBlend(t *testing.T) {
	m := NewMaterial()
	if m.Blend(ChannelEmission) != BlendAdditive {
		t.Fatalf("Blend(emission): got %v, want additive", m.Blend(ChannelEmission))
	}
	if m.Blend(ChannelTransparency) != BlendAlpha {
		t.Fatalf("Blend(transparency): got %v, want alpha", m.Blend(ChannelTransparency))
	}
	if m.Blend(ChannelDiffuse) != BlendOpaque {
		t.Fatalf("Blend(diffuse): got %v, want opaque", m.Blend(ChannelDiffuse))
	}
	m = NewMaterial(WithBlend(ChannelDiffuse, BlendAlpha))
	if m.Blend(ChannelDiffuse) != BlendAlpha {
		t.Fatal("WithBlend: override not applied")
	}
}

func TestUnsetChannelsFallBack(t *testing.T) {
	m := NewMaterial()
	for _, c := range Channels() {
		if m.IsSet(c) {
			t.Fatalf("IsSet(%v): new material should be unset", c)
		}
		sd := m.StagingData(c)
		if !bytes.Equal(sd.Pixels, Fallback(c).Pixels) || sd.Width != 1 || sd.Height != 1 {
			t.Fatalf("StagingData(%v): got %v, want fallback", c, sd.Pixels)
		}
	}
	if got := Fallback(ChannelTransparency).Pixels[3]; got != 0 {
		t.Fatalf("Fallback(transparency): alpha = %d, want 0", got)
	}
	if m.SetCount() != 0 {
		t.Fatalf("SetCount: got %d, want 0", m.SetCount())
	}
}

func TestSetTextureAndReset(t *testing.T) {
	day := texture.NewTexture("earth-diffuse", texture.WithPixels([]byte{1, 2, 3, 4}, 1, 1))
	m := NewMaterial(WithName("earth"), WithTexture(ChannelDiffuse, day))
	if m.Name() != "earth" {
		t.Fatalf("Name: got %s", m.Name())
	}
	v, ok := m.Channel(ChannelDiffuse)
	if !ok || !v.IsTexture() || v.Texture != day {
		t.Fatalf("Channel(diffuse): got %+v, %v", v, ok)
	}
	if sd := m.StagingData(ChannelDiffuse); !bytes.Equal(sd.Pixels, day.Pixels()) {
		t.Fatalf("StagingData(diffuse): got %v", sd.Pixels)
	}

	night := texture.NewTexture("earth-lights")
	prev, err := m.SetTexture(ChannelDiffuse, night)
	if err != nil || prev != day {
		t.Fatalf("SetTexture: prev = %v, err = %v", prev, err)
	}
	if got := m.Reset(ChannelDiffuse); got != night {
		t.Fatalf("Reset: got %v, want previous texture", got)
	}
	if m.IsSet(ChannelDiffuse) {
		t.Fatal("Reset: channel should be unset")
	}

	m.SetTexture(ChannelNormal, day)
	if prev, _ := m.SetTexture(ChannelNormal, nil); prev != day || m.IsSet(ChannelNormal) {
		t.Fatal("SetTexture(nil): should reset the channel")
	}
}

func TestSetColor(t *testing.T) {
	m := NewMaterial(WithColor(ChannelSpecular, [4]float32{1, 0, 0.5, 2}))
	v, ok := m.Channel(ChannelSpecular)
	if !ok || v.IsTexture() {
		t.Fatalf("Channel(specular): got %+v, %v", v, ok)
	}
	sd := m.StagingData(ChannelSpecular)
	want := []byte{255, 0, 128, 255}
	if !bytes.Equal(sd.Pixels, want) {
		t.Fatalf("StagingData(specular): got %v, want %v", sd.Pixels, want)
	}
	if len(m.TextureRefs()) != 0 {
		t.Fatal("TextureRefs: constants are not texture references")
	}
}

func TestUnknownChannel(t *testing.T) {
	m := NewMaterial()
	if _, err := m.SetTexture(Channel(7), texture.NewTexture("x")); !errors.Is(err, ErrUnknownChannel) {
		t.Fatalf("SetTexture: got %v, want ErrUnknownChannel", err)
	}
	if _, err := m.SetColor(Channel(-1), [4]float32{}); !errors.Is(err, ErrUnknownChannel) {
		t.Fatalf("SetColor: got %v, want ErrUnknownChannel", err)
	}
	if m.Reset(Channel(7)) != nil {
		t.Fatal("Reset: unknown channel should return nil")
	}
}

func TestTextureRefsAndSetCount(t *testing.T) {
	m := NewMaterial()
	for _, c := range Channels() {
		m.SetTexture(c, texture.NewTexture(c.String()))
	}
	if m.SetCount() != 5 {
		t.Fatalf("SetCount: got %d, want 5", m.SetCount())
	}
	refs := m.TextureRefs()
	if len(refs) != 5 {
		t.Fatalf("TextureRefs: got %d, want 5", len(refs))
	}
	for c, tex := range refs {
		if tex.Name() != c.String() {
			t.Fatalf("TextureRefs[%v]: got %s", c, tex.Name())
		}
	}
}

func TestParseChannel(t *testing.T) {
	for _, c := range Channels() {
		got, err := ParseChannel(c.String())
		if err != nil || got != c {
			t.Fatalf("ParseChannel(%q): got %v, %v", c.String(), got, err)
		}
	}
	if _, err := ParseChannel("albedo"); !errors.Is(err, ErrUnknownChannel) {
		t.Fatalf("ParseChannel(albedo): got %v, want ErrUnknownChannel", err)
	}
}
