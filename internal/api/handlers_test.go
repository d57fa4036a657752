package api_test

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/voltly/voltly/internal/achievement"
	"github.com/voltly/voltly/internal/api"
	errorvalues "github.com/voltly/voltly/internal/error_values"
	"github.com/voltly/voltly/internal/service"
	"github.com/voltly/voltly/pkg/entity"
	jwtservice "github.com/voltly/voltly/pkg/jwt_service"
	"golang.org/x/crypto/bcrypt"
)

func TestMain(m *testing.M) {
	service.InitValidator()
	m.Run()
}

var (
	username        = "test_name"
	password        = "test_password"
	passwordHash, _ = bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	uid             = uuid.New()
)

type UserServiceMock struct {
	success bool
}

func (usmock *UserServiceMock) ChangeState(success bool) {
	usmock.success = success
}

func (usmock *UserServiceMock) Register(ctx context.Context, req *service.RegisterRequest) (*entity.User, error) {
	if usmock.success {
		return &entity.User{
			ID:           uid,
			Name:         username,
			PasswordHash: string(passwordHash),
		}, nil
	}
	return nil, errors.New("mocked error")
}

func (usmock *UserServiceMock) Login(ctx context.Context, name, password string) (*entity.User, error) {
	if usmock.success {
		return &entity.User{
			ID:           uid,
			Name:         username,
			PasswordHash: string(passwordHash),
		}, nil
	}
	return nil, errors.New("mocked error")
}

func (usmock *UserServiceMock) GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	if usmock.success {
		return &entity.User{
			ID:           uid,
			Name:         username,
			PasswordHash: string(passwordHash),
		}, nil
	}
	return nil, errors.New("mocked error")
}

func (usmock *UserServiceMock) DeleteAccount(ctx context.Context, id uuid.UUID, password string) error {
	if usmock.success {
		return nil
	}
	return errors.New("mocked error")
}

type GoalServiceMock struct {
	err   error
	state *entity.GoalState
}

func (gsmock *GoalServiceMock) ChangeState(err error) {
	gsmock.err = err
}

func (gsmock *GoalServiceMock) GetGoals(ctx context.Context, uid uuid.UUID) (*entity.GoalState, error) {
	if gsmock.err != nil {
		return nil, gsmock.err
	}
	return gsmock.state, nil
}

func (gsmock *GoalServiceMock) CompleteGoal(ctx context.Context, uid uuid.UUID, goalID string) (*entity.GoalState, error) {
	if gsmock.err != nil {
		return nil, gsmock.err
	}
	return gsmock.state, nil
}

type AchievementServiceMock struct {
	err   error
	state *entity.AchievementState
}

func (asmock *AchievementServiceMock) Catalog() []achievement.Entry {
	return achievement.Catalog()
}

func (asmock *AchievementServiceMock) Evaluate(ctx context.Context, uid uuid.UUID) (*entity.AchievementState, error) {
	if asmock.err != nil {
		return nil, asmock.err
	}
	return asmock.state, nil
}

type BillServiceMock struct {
	err   error
	bills []entity.Bill
}

func (bsmock *BillServiceMock) UpsertBill(ctx context.Context, uid uuid.UUID, req *service.UpsertBillRequest) error {
	return bsmock.err
}

func (bsmock *BillServiceMock) GetBills(ctx context.Context, uid uuid.UUID) ([]entity.Bill, error) {
	if bsmock.err != nil {
		return nil, bsmock.err
	}
	return bsmock.bills, nil
}

func (bsmock *BillServiceMock) Savings(ctx context.Context, uid uuid.UUID) (entity.Savings, error) {
	if bsmock.err != nil {
		return entity.Savings{}, bsmock.err
	}
	return entity.Savings{Money: 150, Energy: 80}, nil
}

type LocationServiceMock struct {
	err      error
	deviceID uuid.UUID
}

func (lsmock *LocationServiceMock) CreateLocation(ctx context.Context, uid uuid.UUID, req *service.CreateLocationRequest) (*entity.Location, error) {
	if lsmock.err != nil {
		return nil, lsmock.err
	}
	return &entity.Location{ID: uuid.New(), UserID: uid, Name: req.Name}, nil
}

func (lsmock *LocationServiceMock) GetLocations(ctx context.Context, uid uuid.UUID) ([]*entity.Location, error) {
	return nil, lsmock.err
}

func (lsmock *LocationServiceMock) GetLocation(ctx context.Context, locationID, uid uuid.UUID) (*entity.Location, error) {
	return nil, lsmock.err
}

func (lsmock *LocationServiceMock) DeleteLocation(ctx context.Context, locationID, uid uuid.UUID) error {
	return lsmock.err
}

func (lsmock *LocationServiceMock) SetTariffs(ctx context.Context, locationID, uid uuid.UUID, req *service.SetTariffsRequest) error {
	return lsmock.err
}

func (lsmock *LocationServiceMock) AddDevice(ctx context.Context, locationID, uid uuid.UUID, req *service.CreateDeviceRequest) (uuid.UUID, error) {
	if lsmock.err != nil {
		return uuid.UUID{}, lsmock.err
	}
	return lsmock.deviceID, nil
}

func (lsmock *LocationServiceMock) UpdateDevice(ctx context.Context, locationID, deviceID, uid uuid.UUID, req *service.UpdateDeviceRequest) error {
	return lsmock.err
}

func (lsmock *LocationServiceMock) DeleteDevice(ctx context.Context, locationID, deviceID, uid uuid.UUID) error {
	return lsmock.err
}

func (lsmock *LocationServiceMock) AddRoom(ctx context.Context, locationID, uid uuid.UUID, name string) (uuid.UUID, error) {
	if lsmock.err != nil {
		return uuid.UUID{}, lsmock.err
	}
	return uuid.New(), nil
}

func (lsmock *LocationServiceMock) DeleteRoom(ctx context.Context, locationID, roomID, uid uuid.UUID) error {
	return lsmock.err
}

func (lsmock *LocationServiceMock) DeviceCosts(ctx context.Context, locationID, uid uuid.UUID) ([]entity.DeviceCost, float64, error) {
	return nil, 0, lsmock.err
}

func authedRequest(method, target string, body *bytes.Reader) *http.Request {
	var req *http.Request
	if body != nil {
		req = httptest.NewRequest(method, target, body)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	return req.WithContext(context.WithValue(req.Context(), "User-ID", uid))
}

func TestRegister(t *testing.T) {
	body, err := sonic.ConfigDefault.Marshal(api.RegisterRequest{
		Name:     username,
		Password: password,
	})
	if err != nil {
		t.Fatal(err)
	}
	var req *http.Request
	mock := UserServiceMock{}
	serv := api.New(&api.ServicesList{
		UserService: &mock,
	})
	t.Run("registered", func(t *testing.T) {
		rr := httptest.NewRecorder()
		req = httptest.NewRequest(http.MethodPost, "/auth/register", bytes.NewReader(body))
		mock.ChangeState(true)
		serv.Register(rr, req)
		assert.Equal(t, http.StatusCreated, rr.Result().StatusCode)
	})
	t.Run("service error", func(t *testing.T) {
		rr := httptest.NewRecorder()
		req = httptest.NewRequest(http.MethodPost, "/auth/register", bytes.NewReader(body))
		mock.ChangeState(false)
		serv.Register(rr, req)
		assert.Equal(t, http.StatusInternalServerError, rr.Result().StatusCode)
	})
	t.Run("invalid body", func(t *testing.T) {
		rr := httptest.NewRecorder()
		req = httptest.NewRequest(http.MethodPost, "/auth/register", nil)
		mock.ChangeState(true)
		serv.Register(rr, req)
		assert.Equal(t, http.StatusBadRequest, rr.Result().StatusCode)
	})
}

func TestLogin(t *testing.T) {
	body, err := sonic.ConfigDefault.Marshal(api.LoginRequest{
		Name:     username,
		Password: password,
	})
	if err != nil {
		t.Fatal(err)
	}
	var req *http.Request
	mock := UserServiceMock{}
	serv := api.New(&api.ServicesList{
		UserService: &mock,
		JwtService:  jwtservice.New("secret"),
	})
	t.Run("logged in", func(t *testing.T) {
		rr := httptest.NewRecorder()
		req = httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewReader(body))
		mock.ChangeState(true)
		serv.Login(rr, req)
		assert.Equal(t, http.StatusOK, rr.Result().StatusCode)
	})
	t.Run("invalid body", func(t *testing.T) {
		rr := httptest.NewRecorder()
		req = httptest.NewRequest(http.MethodPost, "/auth/login", nil)
		mock.ChangeState(true)
		serv.Login(rr, req)
		assert.Equal(t, http.StatusBadRequest, rr.Result().StatusCode)
	})
	t.Run("service error", func(t *testing.T) {
		rr := httptest.NewRecorder()
		req = httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewReader(body))
		mock.ChangeState(false)
		serv.Login(rr, req)
		assert.Equal(t, http.StatusInternalServerError, rr.Result().StatusCode)
	})
}

func TestGetGoalsHandler(t *testing.T) {
	mock := GoalServiceMock{
		state: &entity.GoalState{
			UserID: uid,
			Weekly: []entity.Goal{
				{ID: "sem-a6e5c7fb", Title: "Desligar luzes ao sair de casa", GeneratedAt: time.Now()},
			},
			LifetimeCompleted: 5,
		},
	}
	serv := api.New(&api.ServicesList{
		GoalService: &mock,
	})
	t.Run("provided", func(t *testing.T) {
		rr := httptest.NewRecorder()
		mock.ChangeState(nil)
		serv.GetGoals(rr, authedRequest(http.MethodGet, "/goals", nil))
		assert.Equal(t, http.StatusOK, rr.Result().StatusCode)
		var result api.GoalsResponse
		err := sonic.ConfigDefault.NewDecoder(rr.Result().Body).Decode(&result)
		if err != nil {
			t.Fatal(err)
		}
		assert.Equal(t, 5, result.LifetimeCompleted)
		assert.Len(t, result.Weekly, 1)
	})
	t.Run("unauthorized", func(t *testing.T) {
		rr := httptest.NewRecorder()
		serv.GetGoals(rr, httptest.NewRequest(http.MethodGet, "/goals", nil))
		assert.Equal(t, http.StatusUnauthorized, rr.Result().StatusCode)
	})
	t.Run("service error", func(t *testing.T) {
		rr := httptest.NewRecorder()
		mock.ChangeState(errors.New("mocked error"))
		serv.GetGoals(rr, authedRequest(http.MethodGet, "/goals", nil))
		assert.Equal(t, http.StatusInternalServerError, rr.Result().StatusCode)
	})
}

func TestCompleteGoalHandler(t *testing.T) {
	mock := GoalServiceMock{
		state: &entity.GoalState{UserID: uid, LifetimeCompleted: 6},
	}
	serv := api.New(&api.ServicesList{
		GoalService: &mock,
	})
	target := "/goals/sem-a6e5c7fb/complete"
	withPathValue := func(req *http.Request, id string) *http.Request {
		req.SetPathValue("id", id)
		return req
	}
	t.Run("completed", func(t *testing.T) {
		rr := httptest.NewRecorder()
		mock.ChangeState(nil)
		serv.CompleteGoal(rr, withPathValue(authedRequest(http.MethodPost, target, nil), "sem-a6e5c7fb"))
		assert.Equal(t, http.StatusOK, rr.Result().StatusCode)
	})
	t.Run("not active", func(t *testing.T) {
		rr := httptest.NewRecorder()
		mock.ChangeState(errorvalues.ErrGoalNotFound)
		serv.CompleteGoal(rr, withPathValue(authedRequest(http.MethodPost, target, nil), "sem-ffffffff"))
		assert.Equal(t, http.StatusNotFound, rr.Result().StatusCode)
	})
	t.Run("already completed", func(t *testing.T) {
		rr := httptest.NewRecorder()
		mock.ChangeState(errorvalues.ErrGoalCompleted)
		serv.CompleteGoal(rr, withPathValue(authedRequest(http.MethodPost, target, nil), "sem-a6e5c7fb"))
		assert.Equal(t, http.StatusConflict, rr.Result().StatusCode)
	})
	t.Run("state conflict", func(t *testing.T) {
		rr := httptest.NewRecorder()
		mock.ChangeState(errorvalues.ErrStateConflict)
		serv.CompleteGoal(rr, withPathValue(authedRequest(http.MethodPost, target, nil), "sem-a6e5c7fb"))
		assert.Equal(t, http.StatusConflict, rr.Result().StatusCode)
	})
	t.Run("empty id", func(t *testing.T) {
		rr := httptest.NewRecorder()
		mock.ChangeState(nil)
		serv.CompleteGoal(rr, authedRequest(http.MethodPost, "/goals//complete", nil))
		assert.Equal(t, http.StatusBadRequest, rr.Result().StatusCode)
	})
}

func TestGetAchievementsHandler(t *testing.T) {
	mock := AchievementServiceMock{
		state: &entity.AchievementState{UserID: uid, Unlocked: []string{"meta-d1685f"}},
	}
	serv := api.New(&api.ServicesList{
		AchievementService: &mock,
	})
	t.Run("provided", func(t *testing.T) {
		rr := httptest.NewRecorder()
		serv.GetAchievements(rr, authedRequest(http.MethodGet, "/achievements", nil))
		assert.Equal(t, http.StatusOK, rr.Result().StatusCode)
		var result api.AchievementsResponse
		err := sonic.ConfigDefault.NewDecoder(rr.Result().Body).Decode(&result)
		if err != nil {
			t.Fatal(err)
		}
		assert.Equal(t, []string{"meta-d1685f"}, result.Unlocked)
		assert.Len(t, result.Catalog, len(achievement.Catalog()))
	})
	t.Run("service error", func(t *testing.T) {
		rr := httptest.NewRecorder()
		mock.err = errors.New("mocked error")
		serv.GetAchievements(rr, authedRequest(http.MethodGet, "/achievements", nil))
		assert.Equal(t, http.StatusInternalServerError, rr.Result().StatusCode)
	})
}

func TestBillHandlers(t *testing.T) {
	mock := BillServiceMock{
		bills: []entity.Bill{
			{UserID: uid, Month: "2025-05", TotalValue: 450, ConsumptionKwh: 480},
			{UserID: uid, Month: "2025-06", TotalValue: 300, ConsumptionKwh: 400},
		},
	}
	serv := api.New(&api.ServicesList{
		BillService: &mock,
	})
	t.Run("bills provided", func(t *testing.T) {
		rr := httptest.NewRecorder()
		serv.GetBills(rr, authedRequest(http.MethodGet, "/bills", nil))
		assert.Equal(t, http.StatusOK, rr.Result().StatusCode)
	})
	t.Run("bill saved", func(t *testing.T) {
		body, err := sonic.ConfigDefault.Marshal(api.UpsertBillRequest{
			TotalValue:     300,
			ConsumptionKwh: 400,
		})
		if err != nil {
			t.Fatal(err)
		}
		rr := httptest.NewRecorder()
		req := authedRequest(http.MethodPut, "/bills/2025-06", bytes.NewReader(body))
		req.SetPathValue("month", "2025-06")
		serv.UpsertBill(rr, req)
		assert.Equal(t, http.StatusOK, rr.Result().StatusCode)
	})
	t.Run("empty month", func(t *testing.T) {
		rr := httptest.NewRecorder()
		serv.UpsertBill(rr, authedRequest(http.MethodPut, "/bills/", nil))
		assert.Equal(t, http.StatusBadRequest, rr.Result().StatusCode)
	})
	t.Run("savings provided", func(t *testing.T) {
		rr := httptest.NewRecorder()
		serv.GetSavings(rr, authedRequest(http.MethodGet, "/savings", nil))
		assert.Equal(t, http.StatusOK, rr.Result().StatusCode)
		var result entity.Savings
		err := sonic.ConfigDefault.NewDecoder(rr.Result().Body).Decode(&result)
		if err != nil {
			t.Fatal(err)
		}
		assert.InDelta(t, 150, result.Money, 1e-9)
		assert.InDelta(t, 80, result.Energy, 1e-9)
	})
	t.Run("unauthorized", func(t *testing.T) {
		rr := httptest.NewRecorder()
		serv.GetSavings(rr, httptest.NewRequest(http.MethodGet, "/savings", nil))
		assert.Equal(t, http.StatusUnauthorized, rr.Result().StatusCode)
	})
}

func TestAddDeviceHandler(t *testing.T) {
	mock := LocationServiceMock{deviceID: uuid.New()}
	serv := api.New(&api.ServicesList{
		LocationService: &mock,
	})
	locID := uuid.New()
	target := "/locations/" + locID.String() + "/devices"
	deviceBody := func(t *testing.T, req api.CreateDeviceRequest) *bytes.Reader {
		body, err := sonic.ConfigDefault.Marshal(req)
		if err != nil {
			t.Fatal(err)
		}
		return bytes.NewReader(body)
	}
	withLocationID := func(req *http.Request) *http.Request {
		req.SetPathValue("id", locID.String())
		return req
	}
	t.Run("added", func(t *testing.T) {
		rr := httptest.NewRecorder()
		mock.err = nil
		req := withLocationID(authedRequest(http.MethodPost, target, deviceBody(t, api.CreateDeviceRequest{
			Name:       "Chuveiro",
			RawValue:   5500,
			Unit:       entity.UnitWatt,
			DailyHours: 0.5,
		})))
		serv.AddDevice(rr, req)
		assert.Equal(t, http.StatusCreated, rr.Result().StatusCode)
	})
	t.Run("rejected fields return bad request", func(t *testing.T) {
		rr := httptest.NewRecorder()
		mock.err = errors.Join(errorvalues.ErrValidation, errors.New("DailyHours"))
		req := withLocationID(authedRequest(http.MethodPost, target, deviceBody(t, api.CreateDeviceRequest{
			Name:       "Chuveiro",
			RawValue:   5500,
			Unit:       entity.UnitWatt,
			DailyHours: 30,
		})))
		serv.AddDevice(rr, req)
		assert.Equal(t, http.StatusBadRequest, rr.Result().StatusCode)
	})
	t.Run("unexist room", func(t *testing.T) {
		rr := httptest.NewRecorder()
		mock.err = errorvalues.ErrRoomNotFound
		req := withLocationID(authedRequest(http.MethodPost, target, deviceBody(t, api.CreateDeviceRequest{
			Name: "Chuveiro",
			Unit: entity.UnitWatt,
		})))
		serv.AddDevice(rr, req)
		assert.Equal(t, http.StatusNotFound, rr.Result().StatusCode)
	})
}
