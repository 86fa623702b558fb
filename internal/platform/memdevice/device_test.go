package memdevice

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/darkkaiser/setting-server/internal/platform"
)

// TestDevice_SettingsStore 설정 저장소의 조회/저장 동작을 검증합니다.
func TestDevice_SettingsStore(t *testing.T) {
	t.Parallel()

	t.Run("존재하지 않는 키는 ErrSettingNotFound를 반환한다", func(t *testing.T) {
		t.Parallel()

		d := New(DefaultOptions())

		_, err := d.GetInt("unknown_key")
		assert.ErrorIs(t, err, platform.ErrSettingNotFound)
	})

	t.Run("저장한 값을 다시 조회할 수 있다", func(t *testing.T) {
		t.Parallel()

		d := New(DefaultOptions())

		require.NoError(t, d.PutInt("screen_brightness", 128))

		value, err := d.GetInt("screen_brightness")
		require.NoError(t, err)
		assert.Equal(t, 128, value)
	})

	t.Run("초기 설정값이 저장소에 반영된다", func(t *testing.T) {
		t.Parallel()

		opts := DefaultOptions()
		opts.InitialSettings = map[string]int{"screen_off_timeout": 60000}

		d := New(opts)

		value, err := d.GetInt("screen_off_timeout")
		require.NoError(t, err)
		assert.Equal(t, 60000, value)
	})
}

// TestDevice_RingerMode 벨소리 모드의 조회/변경 동작을 검증합니다.
func TestDevice_RingerMode(t *testing.T) {
	t.Parallel()

	d := New(DefaultOptions())
	assert.Equal(t, platform.RingerModeNormal, d.RingerMode())

	require.NoError(t, d.SetRingerMode(platform.RingerModeVibrate))
	assert.Equal(t, platform.RingerModeVibrate, d.RingerMode())

	err := d.SetRingerMode(platform.RingerMode(99))
	assert.ErrorIs(t, err, platform.ErrInvalidRingerMode)
	assert.Equal(t, platform.RingerModeVibrate, d.RingerMode(), "유효하지 않은 모드 변경은 기존 상태를 유지해야 합니다")
}

// TestDevice_StreamVolume 스트림 볼륨의 조회/변경과 범위 절삭 동작을 검증합니다.
func TestDevice_StreamVolume(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		stream   platform.Stream
		volume   int
		expected int
	}{
		{"벨소리 볼륨 정상 범위", platform.StreamRing, 3, 3},
		{"벨소리 볼륨 최대값 초과시 절삭", platform.StreamRing, MaxRingerVolume + 10, MaxRingerVolume},
		{"벨소리 볼륨 음수는 0으로 절삭", platform.StreamRing, -5, 0},
		{"미디어 볼륨 정상 범위", platform.StreamMedia, 12, 12},
		{"미디어 볼륨 최대값 초과시 절삭", platform.StreamMedia, MaxMediaVolume + 1, MaxMediaVolume},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			d := New(DefaultOptions())

			require.NoError(t, d.SetStreamVolume(tt.stream, tt.volume))

			volume, err := d.StreamVolume(tt.stream)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, volume)
		})
	}

	t.Run("알 수 없는 스트림은 ErrUnknownStream을 반환한다", func(t *testing.T) {
		t.Parallel()

		d := New(DefaultOptions())

		_, err := d.StreamVolume(platform.Stream("alarm"))
		assert.ErrorIs(t, err, platform.ErrUnknownStream)

		err = d.SetStreamVolume(platform.Stream("alarm"), 1)
		assert.ErrorIs(t, err, platform.ErrUnknownStream)

		_, err = d.StreamMaxVolume(platform.Stream("alarm"))
		assert.ErrorIs(t, err, platform.ErrUnknownStream)
	})
}

// TestDevice_StreamMaxVolume 스트림별 최대 볼륨을 검증합니다.
func TestDevice_StreamMaxVolume(t *testing.T) {
	t.Parallel()

	d := New(DefaultOptions())

	ringMax, err := d.StreamMaxVolume(platform.StreamRing)
	require.NoError(t, err)
	assert.Equal(t, MaxRingerVolume, ringMax)

	mediaMax, err := d.StreamMaxVolume(platform.StreamMedia)
	require.NoError(t, err)
	assert.Equal(t, MaxMediaVolume, mediaMax)
}

// TestDevice_AirplaneMode 비행기 모드의 조회/변경 동작을 검증합니다.
func TestDevice_AirplaneMode(t *testing.T) {
	t.Parallel()

	d := New(DefaultOptions())
	assert.False(t, d.AirplaneModeEnabled())

	require.NoError(t, d.SetAirplaneMode(true))
	assert.True(t, d.AirplaneModeEnabled())

	require.NoError(t, d.SetAirplaneMode(false))
	assert.False(t, d.AirplaneModeEnabled())
}

// TestDevice_Screen 화면 상태 조회와 깨우기 동작을 검증합니다.
func TestDevice_Screen(t *testing.T) {
	t.Parallel()

	opts := DefaultOptions()
	opts.ScreenOn = false

	d := New(opts)

	on, err := d.ScreenOn()
	require.NoError(t, err)
	assert.False(t, on)

	require.NoError(t, d.WakeUp())

	on, err = d.ScreenOn()
	require.NoError(t, err)
	assert.True(t, on)

	// 이미 켜진 화면의 깨우기는 아무런 효과가 없다.
	require.NoError(t, d.WakeUp())

	on, err = d.ScreenOn()
	require.NoError(t, err)
	assert.True(t, on)
}

// TestDevice_Uptime 부팅 후 경과 시간이 단조 증가하는지 검증합니다.
func TestDevice_Uptime(t *testing.T) {
	t.Parallel()

	d := New(DefaultOptions())

	first := d.Uptime()
	assert.GreaterOrEqual(t, first, time.Duration(0))

	time.Sleep(10 * time.Millisecond)

	second := d.Uptime()
	assert.Greater(t, second, first)

	assert.Greater(t, d.ElapsedRealtimeNanos(), first.Nanoseconds())
}

// TestDevice_SetTime 시스템 시각 변경이 오프셋으로 반영되는지 검증합니다.
func TestDevice_SetTime(t *testing.T) {
	t.Parallel()

	d := New(DefaultOptions())

	target := time.Now().Add(3 * time.Hour)
	require.NoError(t, d.SetTime(target))

	diff := d.Now().Sub(target)
	assert.Less(t, diff.Abs(), time.Second, "디바이스 시각은 지정된 시각에 근접해야 합니다")
}
