package mic

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type StoreTestSuite struct {
	suite.Suite
	ctx  context.Context
	ctrl *gomock.Controller
	dev  *MockController
}

func TestStoreTestSuite(t *testing.T) {
	suite.Run(t, new(StoreTestSuite))
}

func (suite *StoreTestSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.ctrl = gomock.NewController(suite.T())
	suite.dev = NewMockController(suite.ctrl)
}

func (suite *StoreTestSuite) TestToggleParity() {
	for _, initial := range []bool{false, true} {
		store := NewStore(NewMemory(initial), time.Second)
		_, err := store.Sync(suite.ctx)
		suite.Require().NoError(err)

		for n := 1; n <= 7; n++ {
			muted, err := store.Toggle(suite.ctx, nil)
			suite.Require().NoError(err)
			want := initial != (n%2 == 1)
			suite.Equal(want, muted, "initial=%v n=%d", initial, n)
			suite.Equal(want, store.Muted())
		}
	}
}

func (suite *StoreTestSuite) TestForceMuteIsIdempotent() {
	store := NewStore(NewMemory(false), time.Second)

	for i := 0; i < 2; i++ {
		muted, err := store.Toggle(suite.ctx, Force(true))
		suite.Require().NoError(err)
		suite.True(muted)
		suite.True(store.Muted())
	}
}

func (suite *StoreTestSuite) TestDeviceFailureKeepsState() {
	suite.dev.EXPECT().Toggle(gomock.Any(), gomock.Nil()).Return(true, nil)
	suite.dev.EXPECT().Toggle(gomock.Any(), gomock.Nil()).Return(false, errors.New("permission denied"))

	store := NewStore(suite.dev, time.Second)

	muted, err := store.Toggle(suite.ctx, nil)
	suite.Require().NoError(err)
	suite.True(muted)

	muted, err = store.Toggle(suite.ctx, nil)
	suite.Require().Error(err)
	var devErr *DeviceError
	suite.Require().ErrorAs(err, &devErr)
	suite.Equal("toggle", devErr.Op)
	suite.EqualError(devErr.Err, "permission denied")
	suite.True(muted, "failed toggle must report the retained state")
	suite.True(store.Muted())
}

func (suite *StoreTestSuite) TestForcedStateIsPassedThrough() {
	suite.dev.EXPECT().Toggle(gomock.Any(), Force(false)).Return(false, nil)

	store := NewStore(suite.dev, time.Second)
	muted, err := store.Toggle(suite.ctx, Force(false))
	suite.Require().NoError(err)
	suite.False(muted)
}

func (suite *StoreTestSuite) TestDeviceCallIsBounded() {
	suite.dev.EXPECT().Toggle(gomock.Any(), gomock.Nil()).DoAndReturn(func(ctx context.Context, _ *bool) (bool, error) {
		<-ctx.Done()
		return false, ctx.Err()
	})

	store := NewStore(suite.dev, 10*time.Millisecond)
	_, err := store.Toggle(suite.ctx, nil)
	suite.ErrorIs(err, context.DeadlineExceeded)
	suite.False(store.Muted())
}

func (suite *StoreTestSuite) TestSyncAdoptsDeviceState() {
	suite.dev.EXPECT().Muted(gomock.Any()).Return(true, nil)

	store := NewStore(suite.dev, time.Second)
	muted, err := store.Sync(suite.ctx)
	suite.Require().NoError(err)
	suite.True(muted)
	suite.True(store.Muted())
}

func (suite *StoreTestSuite) TestSyncFailure() {
	suite.dev.EXPECT().Muted(gomock.Any()).Return(false, errors.New("no device"))

	store := NewStore(suite.dev, time.Second)
	_, err := store.Sync(suite.ctx)
	var devErr *DeviceError
	suite.Require().ErrorAs(err, &devErr)
	suite.Equal("read", devErr.Op)
	suite.False(store.Muted())
}

func (suite *StoreTestSuite) TestConcurrentTogglesAreSerialized() {
	const n = 51
	store := NewStore(NewMemory(false), time.Second)

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := store.Toggle(suite.ctx, nil)
			suite.NoError(err)
			_ = store.Muted()
		}()
	}
	wg.Wait()

	suite.True(store.Muted())
}
