package leveldata

import (
	"strings"
	"testing"
	"testing/fstest"
)

const arenaTMX = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="10" height="5" tilewidth="16" tileheight="8" infinite="0">
 <objectgroup id="1" name="Targets">
  <object id="1" name="orb" x="40" y="20">
   <properties>
    <property name="travelX" type="float" value="64"/>
    <property name="duration" type="float" value="1.5"/>
   </properties>
  </object>
  <object id="2" name="still" x="10" y="10"/>
 </objectgroup>
 <objectgroup id="2" name="Turrets">
  <object id="3" x="90" y="30">
   <properties>
    <property name="target" value="orb"/>
   </properties>
  </object>
  <object id="4" x="20" y="30">
   <properties>
    <property name="target" value="still"/>
   </properties>
  </object>
 </objectgroup>
 <objectgroup id="3" name="Spinners">
  <object id="5" x="5" y="6">
   <properties>
    <property name="angle" type="float" value="45"/>
    <property name="speed" type="float" value="-3"/>
   </properties>
  </object>
 </objectgroup>
</map>
`

func TestLoadArena(t *testing.T) {
	fsys := fstest.MapFS{"arena.tmx": {Data: []byte(arenaTMX)}}

	arena, err := LoadArena(fsys, "arena.tmx")
	if err != nil {
		t.Fatalf("LoadArena: %v", err)
	}

	if arena.Width != 160 || arena.Height != 40 {
		t.Errorf("size = %dx%d, want 160x40", arena.Width, arena.Height)
	}
	if len(arena.Targets) != 2 {
		t.Fatalf("got %d targets, want 2", len(arena.Targets))
	}

	orb, ok := arena.FindTarget("orb")
	if !ok {
		t.Fatal("target orb not found")
	}
	if orb.X != 40 || orb.Y != 20 || orb.TravelX != 64 || orb.TravelY != 0 || orb.Duration != 1.5 {
		t.Errorf("orb = %+v", orb)
	}
	still, _ := arena.FindTarget("still")
	if still.Duration != defaultTravelDuration {
		t.Errorf("still duration = %v, want default %v", still.Duration, defaultTravelDuration)
	}

	if len(arena.Turrets) != 2 {
		t.Fatalf("got %d turrets, want 2", len(arena.Turrets))
	}
	if arena.Turrets[0].X != 20 || arena.Turrets[0].Target != "still" {
		t.Errorf("turrets not sorted left to right: %+v", arena.Turrets)
	}

	if len(arena.Spinners) != 1 || arena.Spinners[0].Angle != 45 || arena.Spinners[0].Speed != -3 {
		t.Errorf("spinners = %+v", arena.Spinners)
	}
}

func TestLoadArenaUnknownTarget(t *testing.T) {
	tmx := strings.Replace(arenaTMX, `value="orb"/>`, `value="ghost"/>`, 1)
	fsys := fstest.MapFS{"arena.tmx": {Data: []byte(tmx)}}

	_, err := LoadArena(fsys, "arena.tmx")
	if err == nil || !strings.Contains(err.Error(), `"ghost"`) {
		t.Errorf("err = %v, want unknown target error", err)
	}
}

func TestLoadArenaDuplicateTarget(t *testing.T) {
	tmx := strings.Replace(arenaTMX, `name="still"`, `name="orb"`, 1)
	fsys := fstest.MapFS{"arena.tmx": {Data: []byte(tmx)}}

	if _, err := LoadArena(fsys, "arena.tmx"); err == nil {
		t.Error("duplicate target names accepted")
	}
}

func TestLoadArenaMissingFile(t *testing.T) {
	_, err := LoadArena(fstest.MapFS{}, "nope.tmx")
	if err == nil || !strings.Contains(err.Error(), "nope.tmx") {
		t.Errorf("err = %v, want load error naming the file", err)
	}
}
