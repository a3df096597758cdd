package service_test

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"os"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	errorvalues "github.com/limbo/flowmotion/internal/error_values"
	"github.com/limbo/flowmotion/internal/service"
	"github.com/limbo/flowmotion/internal/service/mocks"
	"github.com/limbo/flowmotion/pkg/client"
	"github.com/limbo/flowmotion/pkg/dom"
	"github.com/limbo/flowmotion/pkg/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	service.InitValidator()
	os.Exit(m.Run())
}

func intPtr(i int) *int    { return &i }
func boolPtr(b bool) *bool { return &b }

type habitCard struct {
	doc    *dom.Document
	streak *dom.Element
	status *dom.Element
	card   *dom.Element
}

func newHabitCard(habitID uuid.UUID) habitCard {
	hc := habitCard{
		streak: dom.NewElement(service.StreakElementID(habitID), "streak"),
		status: dom.NewElement(service.StatusElementID(habitID)),
		card:   dom.NewElement(service.CardElementID(habitID), "habit-card"),
	}
	hc.streak.SetText("6")
	hc.status.SetText("pending")
	hc.doc = dom.NewDocument(hc.card, hc.streak, hc.status)
	return hc
}

func TestSubmit(t *testing.T) {
	t.Parallel()
	habitID := uuid.New()
	newForm := func() *entity.HabitForm {
		return &entity.HabitForm{
			HabitID: habitID,
			Action:  "http://app.test/habits/" + habitID.String() + "/respond/",
			Fields: url.Values{
				"completed":      {"no"},
				client.CSRFField: {"token"},
			},
		}
	}
	testCases := []struct {
		Desc         string
		Submitter    string
		Error        error
		NoError      bool
		Streak       string
		Status       string
		CardDone     bool
		MockPrepFunc func(c *mocks.MockHabitClientI)
	}{
		{
			Desc:      "success patches card",
			Submitter: "yes",
			NoError:   true,
			Streak:    "7",
			Status:    service.CompletedBadge,
			CardDone:  true,
			MockPrepFunc: func(c *mocks.MockHabitClientI) {
				c.EXPECT().Respond(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, form *entity.HabitForm) (*entity.RespondResult, error) {
						assert.Equal(t, "yes", form.Fields.Get("completed"))
						assert.Equal(t, "token", form.Fields.Get(client.CSRFField))
						return &entity.RespondResult{Success: true, CurrentStreak: intPtr(7), Feedback: "great"}, nil
					})
			},
		},
		{
			Desc:      "server says not completed",
			Submitter: "no",
			NoError:   true,
			Streak:    "0",
			Status:    service.PendingBadge,
			MockPrepFunc: func(c *mocks.MockHabitClientI) {
				c.EXPECT().Respond(gomock.Any(), gomock.Any()).
					Return(&entity.RespondResult{Success: true, Completed: boolPtr(false), CurrentStreak: intPtr(0)}, nil)
			},
		},
		{
			Desc:   "server error falls back once",
			Error:  errorvalues.ErrFellBack,
			Streak: "6",
			Status: "pending",
			MockPrepFunc: func(c *mocks.MockHabitClientI) {
				c.EXPECT().Respond(gomock.Any(), gomock.Any()).
					Return(nil, &client.HTTPError{StatusCode: http.StatusInternalServerError, Message: "boom"})
				c.EXPECT().SubmitStandard(gomock.Any(), gomock.Any()).Return(nil).Times(1)
			},
		},
		{
			Desc:   "unsuccessful payload falls back",
			Error:  errorvalues.ErrUnsuccessful,
			Streak: "6",
			Status: "pending",
			MockPrepFunc: func(c *mocks.MockHabitClientI) {
				c.EXPECT().Respond(gomock.Any(), gomock.Any()).Return(&entity.RespondResult{Success: false}, nil)
				c.EXPECT().SubmitStandard(gomock.Any(), gomock.Any()).Return(nil).Times(1)
			},
		},
		{
			Desc:   "fallback failure is reported",
			Streak: "6",
			Status: "pending",
			MockPrepFunc: func(c *mocks.MockHabitClientI) {
				c.EXPECT().Respond(gomock.Any(), gomock.Any()).Return(nil, errors.New("connection refused"))
				c.EXPECT().SubmitStandard(gomock.Any(), gomock.Any()).Return(errors.New("still down")).Times(1)
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			habitClient := mocks.NewMockHabitClientI(ctrl)
			tc.MockPrepFunc(habitClient)
			hc := newHabitCard(habitID)
			serv := service.NewResponderService(habitClient, hc.doc)

			form := newForm()
			_, err := serv.Submit(context.Background(), form, tc.Submitter)
			switch {
			case tc.NoError:
				assert.NoError(t, err)
			case tc.Error != nil:
				assert.ErrorIs(t, err, tc.Error)
			default:
				assert.Error(t, err)
				assert.NotErrorIs(t, err, errorvalues.ErrFellBack)
			}
			assert.Equal(t, tc.Streak, hc.streak.Text())
			assert.Equal(t, tc.Status, hc.status.Text())
			assert.Equal(t, tc.CardDone, hc.card.HasClass(service.CompletedClass))
			// The caller's form is never modified
			assert.Equal(t, "no", form.Fields.Get("completed"))
		})
	}
}

func TestSubmitSubmitterOverridesInFallback(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	habitClient := mocks.NewMockHabitClientI(ctrl)
	habitID := uuid.New()
	habitClient.EXPECT().Respond(gomock.Any(), gomock.Any()).Return(nil, &client.HTTPError{StatusCode: http.StatusBadGateway})
	habitClient.EXPECT().SubmitStandard(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, form *entity.HabitForm) error {
			assert.Equal(t, "yes", form.Fields.Get("completed"))
			return nil
		})
	serv := service.NewResponderService(habitClient, dom.NewDocument())
	_, err := serv.Submit(context.Background(), &entity.HabitForm{
		HabitID: habitID,
		Action:  "https://app.test/habits/" + habitID.String() + "/respond/",
		Fields:  url.Values{},
	}, "yes")
	assert.ErrorIs(t, err, errorvalues.ErrFellBack)
}

func TestSubmitInvalidForm(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	habitClient := mocks.NewMockHabitClientI(ctrl)
	serv := service.NewResponderService(habitClient, dom.NewDocument())

	_, err := serv.Submit(context.Background(), &entity.HabitForm{HabitID: uuid.New(), Action: "/relative/"}, "yes")
	assert.Error(t, err)
	_, err = serv.Submit(context.Background(), &entity.HabitForm{Action: "http://app.test/"}, "yes")
	assert.Error(t, err)
}

func TestAcknowledge(t *testing.T) {
	t.Parallel()
	habitID := uuid.New()
	testCases := []struct {
		Desc         string
		Error        error
		MockPrepFunc func(c *mocks.MockHabitClientI)
	}{
		{
			Desc: "success",
			MockPrepFunc: func(c *mocks.MockHabitClientI) {
				c.EXPECT().Acknowledge(gomock.Any(), habitID, "tok").Return(&entity.AcknowledgeResult{Success: true}, nil)
			},
		},
		{
			Desc:  "refused",
			Error: errorvalues.ErrNotAcknowledged,
			MockPrepFunc: func(c *mocks.MockHabitClientI) {
				c.EXPECT().Acknowledge(gomock.Any(), habitID, "tok").Return(&entity.AcknowledgeResult{Success: false}, nil)
			},
		},
		{
			Desc:  "transport error",
			Error: context.DeadlineExceeded,
			MockPrepFunc: func(c *mocks.MockHabitClientI) {
				c.EXPECT().Acknowledge(gomock.Any(), habitID, "tok").Return(nil, context.DeadlineExceeded)
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			habitClient := mocks.NewMockHabitClientI(ctrl)
			tc.MockPrepFunc(habitClient)
			serv := service.NewResponderService(habitClient, dom.NewDocument())
			err := serv.Acknowledge(context.Background(), habitID, "tok")
			if tc.Error == nil {
				require.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tc.Error)
		})
	}
}

func TestSubmitWithoutRenderedCard(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	habitClient := mocks.NewMockHabitClientI(ctrl)
	view := mocks.NewMockDocumentI(ctrl)
	habitID := uuid.New()
	habitClient.EXPECT().Respond(gomock.Any(), gomock.Any()).
		Return(&entity.RespondResult{Success: true, CurrentStreak: intPtr(1)}, nil)
	view.EXPECT().GetElementByID(gomock.Any()).Return(nil).Times(3)

	serv := service.NewResponderService(habitClient, view)
	res, err := serv.Submit(context.Background(), &entity.HabitForm{
		HabitID: habitID,
		Action:  "http://app.test/habits/" + habitID.String() + "/respond/",
	}, "yes")
	require.NoError(t, err)
	assert.Equal(t, 1, *res.CurrentStreak)
}
