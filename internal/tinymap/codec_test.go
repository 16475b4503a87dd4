package tinymap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wastefall/wastefall/internal/model"
)

func TestSubmapCodec(t *testing.T) {
	sm := NewSubmap()
	sm.Ter[3][4] = model.TerConsole
	sm.Furn[0][11] = model.FurnRack
	sm.Spawns = append(sm.Spawns, model.MonsterSpawn{
		Type: model.MonZombieMaster, Count: 1, PosX: 6, PosY: 6,
		MissionUID: 12, Name: "Demonic Soul",
	})
	comp := &model.Computer{Name: "Workstation", Security: 2, PosX: 3, PosY: 4}
	comp.AddOption("Download Memory Contents", model.ActionDownloadSoftware, 2)
	comp.AddFailure(model.FailManhacks)
	sm.Computers = append(sm.Computers, comp)

	blob, err := EncodeSubmap(sm)
	require.NoError(t, err)

	got, err := DecodeSubmap(blob)
	require.NoError(t, err)

	assert.Equal(t, model.TerConsole, got.Ter[3][4])
	assert.Equal(t, model.FurnRack, got.Furn[0][11])
	require.Len(t, got.Spawns, 1)
	assert.Equal(t, "Demonic Soul", got.Spawns[0].Name)
	require.Len(t, got.Computers, 1)
	assert.Equal(t, comp.Options, got.Computers[0].Options)
	assert.Equal(t, comp.Failures, got.Computers[0].Failures)
}

func TestEncodeSubmapCompresses(t *testing.T) {
	// A blank chunk is mostly repeated dirt, so the frame should come
	// out far smaller than the raw JSON.
	blob, err := EncodeSubmap(NewSubmap())
	require.NoError(t, err)
	assert.Less(t, len(blob), 512)
}

func TestDecodeSubmapGarbage(t *testing.T) {
	_, err := DecodeSubmap([]byte("not a zstd frame"))
	assert.Error(t, err)
}
