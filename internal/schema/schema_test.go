package schema

import (
	"errors"
	"testing"

	"finsim/internal/domain"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

const validEvent = `{
	"eventTitle": "Bonus season",
	"description": "You got a bonus",
	"options": [
		{"id": "A", "text": "Invest it", "impact": {"savings": 2000000, "happiness": 5}},
		{"id": "B", "text": "Travel", "impact": {"savings": -1000000, "happiness": 20}}
	],
	"aiNudge": "Pay yourself first"
}`

func TestSimulationEvent(t *testing.T) {
	t.Run("valid event", func(t *testing.T) {
		event, err := SimulationEvent([]byte(validEvent))
		require.NoError(t, err)
		require.Equal(t, "Bonus season", event.EventTitle)
		require.Len(t, event.Options, 2)
		require.Equal(t, -1000000.0, event.Options[1].Impact.Savings)
		require.Nil(t, event.PrecedingChoice)
	})

	t.Run("rejects malformed events", func(t *testing.T) {
		cases := map[string]string{
			"string savings":  `{"eventTitle":"x","description":"y","aiNudge":"z","options":[{"id":"A","text":"t","impact":{"savings":"10","happiness":1}}]}`,
			"missing impact":  `{"eventTitle":"x","description":"y","aiNudge":"z","options":[{"id":"A","text":"t"}]}`,
			"missing title":   `{"description":"y","aiNudge":"z","options":[{"id":"A","text":"t","impact":{"savings":1,"happiness":1}}]}`,
			"missing options": `{"eventTitle":"x","description":"y","aiNudge":"z"}`,
			"empty options":   `{"eventTitle":"x","description":"y","aiNudge":"z","options":[]}`,
			"empty id":        `{"eventTitle":"x","description":"y","aiNudge":"z","options":[{"id":"","text":"t","impact":{"savings":1,"happiness":1}}]}`,
			"duplicate ids":   `{"eventTitle":"x","description":"y","aiNudge":"z","options":[{"id":"A","text":"t","impact":{"savings":1,"happiness":1}},{"id":"A","text":"u","impact":{"savings":1,"happiness":1}}]}`,
			"array":           `[]`,
			"null":            `null`,
			"empty":           ``,
		}
		for name, payload := range cases {
			_, err := SimulationEvent([]byte(payload))
			require.Error(t, err, name)
			require.True(t, errors.Is(err, domain.ErrValidation), name)

			validationErr := &ValidationError{}
			require.True(t, errors.As(err, &validationErr), name)
			require.Equal(t, SchemaName_SimulationEvent, validationErr.Schema, name)
		}
	})

	t.Run("generated events need exactly two options", func(t *testing.T) {
		_, err := GeneratedEvent([]byte(validEvent))
		require.NoError(t, err)

		three := `{"eventTitle":"x","description":"y","aiNudge":"z","options":[
			{"id":"A","text":"a","impact":{"savings":1,"happiness":1}},
			{"id":"B","text":"b","impact":{"savings":1,"happiness":1}},
			{"id":"C","text":"c","impact":{"savings":1,"happiness":1}}]}`
		_, err = GeneratedEvent([]byte(three))
		require.True(t, errors.Is(err, domain.ErrValidation))
	})

	t.Run("generated events never carry a preceding choice", func(t *testing.T) {
		withChoice := `{"eventTitle":"x","description":"y","aiNudge":"z","choice":"made up","choiceId":"A","options":[
			{"id":"A","text":"a","impact":{"savings":1,"happiness":1}},
			{"id":"B","text":"b","impact":{"savings":1,"happiness":1}}]}`

		stored, err := SimulationEvent([]byte(withChoice))
		require.NoError(t, err)
		require.Equal(t, "made up", *stored.PrecedingChoice)

		event, err := GeneratedEvent([]byte(withChoice))
		require.NoError(t, err)
		require.Nil(t, event.PrecedingChoice)
		require.Nil(t, event.PrecedingChoiceID)
	})
}

func TestSimulationStatus(t *testing.T) {
	t.Run("passes unknown keys through", func(t *testing.T) {
		status, err := SimulationStatus([]byte(`{"age":30,"job":"PM","city":"Hanoi"}`))
		require.NoError(t, err)
		require.Equal(t, 30, status.Age)
		require.Contains(t, status.Extra, "city")
	})

	t.Run("all fields optional", func(t *testing.T) {
		status, err := SimulationStatus([]byte(`{}`))
		require.NoError(t, err)
		require.Equal(t, 0, status.Age)
	})

	t.Run("wrong types", func(t *testing.T) {
		for _, payload := range []string{`{"age":"30"}`, `{"savings":true}`, `{"goals":"house"}`, `{"age":-1}`, `"hi"`} {
			_, err := SimulationStatus([]byte(payload))
			require.True(t, errors.Is(err, domain.ErrValidation), payload)
		}
	})

	t.Run("encode round trip", func(t *testing.T) {
		in := domain.InitialLifeStatus()
		bytes, err := EncodeSimulationStatus(in)
		require.NoError(t, err)

		out, err := SimulationStatus(bytes)
		require.NoError(t, err)
		require.Equal(t, in.Goals, out.Goals)
		require.Equal(t, in.Savings, out.Savings)
	})
}

func TestSimulationDecisions(t *testing.T) {
	t.Run("keeps the preceding choice", func(t *testing.T) {
		first, err := SimulationEvent([]byte(validEvent))
		require.NoError(t, err)
		second := *first
		choice, choiceID := "Invest it", "A"
		second.PrecedingChoice = &choice
		second.PrecedingChoiceID = &choiceID

		bytes, err := EncodeSimulationDecisions([]domain.SimulationEvent{*first, second})
		require.NoError(t, err)

		decisions, err := SimulationDecisions(bytes)
		require.NoError(t, err)
		require.Len(t, decisions, 2)
		require.Nil(t, decisions[0].PrecedingChoice)
		require.Equal(t, "Invest it", *decisions[1].PrecedingChoice)
		require.Equal(t, "A", *decisions[1].PrecedingChoiceID)
	})

	t.Run("one bad element fails the list", func(t *testing.T) {
		payload := `[` + validEvent + `, {"eventTitle":"x"}]`
		_, err := SimulationDecisions([]byte(payload))
		require.True(t, errors.Is(err, domain.ErrValidation))
	})

	t.Run("object is not a list", func(t *testing.T) {
		_, err := SimulationDecisions([]byte(validEvent))
		require.True(t, errors.Is(err, domain.ErrValidation))
	})
}

func TestPortfolioAssets(t *testing.T) {
	t.Run("numbers only", func(t *testing.T) {
		assets, err := PortfolioAssets([]byte(`{"BTC":1.5,"AAPL":10}`))
		require.NoError(t, err)
		require.True(t, assets["BTC"].Equal(decimal.RequireFromString("1.5")))
		require.True(t, assets["AAPL"].Equal(decimal.NewFromInt(10)))

		empty, err := PortfolioAssets([]byte(`{}`))
		require.NoError(t, err)
		require.Empty(t, empty)
	})

	t.Run("rejects bad holdings", func(t *testing.T) {
		for _, payload := range []string{`{"BTC":"1.5"}`, `{"BTC":0}`, `{"BTC":-2}`, `{"":1}`, `[1]`, `null`, `{"BTC":{"q":1}}`} {
			_, err := PortfolioAssets([]byte(payload))
			require.True(t, errors.Is(err, domain.ErrValidation), payload)
		}
	})

	t.Run("encode keeps precision", func(t *testing.T) {
		in := map[string]decimal.Decimal{"ETH": decimal.RequireFromString("0.123456789012345678")}
		bytes, err := EncodePortfolioAssets(in)
		require.NoError(t, err)
		require.JSONEq(t, `{"ETH":0.123456789012345678}`, string(bytes))

		out, err := PortfolioAssets(bytes)
		require.NoError(t, err)
		require.True(t, out["ETH"].Equal(in["ETH"]))
	})

	t.Run("encode refuses a zero quantity", func(t *testing.T) {
		_, err := EncodePortfolioAssets(map[string]decimal.Decimal{"ETH": decimal.Zero})
		require.True(t, errors.Is(err, domain.ErrValidation))
	})
}

func TestCheck(t *testing.T) {
	require.NoError(t, Check(SchemaName_SimulationEvent, []byte(validEvent)))
	require.NoError(t, Check(SchemaName_PortfolioAssets, []byte(`{"BTC":1}`)))
	require.True(t, errors.Is(Check(SchemaName_SimulationStatus, []byte(`[]`)), domain.ErrValidation))
	require.Error(t, Check("NOPE", []byte(`{}`)))
}

func TestParseEvent(t *testing.T) {
	t.Run("strips fences", func(t *testing.T) {
		out, err := ParseEvent("```json\n" + validEvent + "\n```")
		require.NoError(t, err)
		require.JSONEq(t, validEvent, string(out))

		out, err = ParseEvent("```" + validEvent + "```")
		require.NoError(t, err)
		require.JSONEq(t, validEvent, string(out))
	})

	t.Run("bare object", func(t *testing.T) {
		_, err := ParseEvent("  " + validEvent)
		require.NoError(t, err)
	})

	t.Run("not json", func(t *testing.T) {
		for _, raw := range []string{"Sure! Here is your event", "", "```json\n{\"eventTitle\": ```", "[1,2]"} {
			_, err := ParseEvent(raw)
			require.True(t, errors.Is(err, domain.ErrNarrativeParse), raw)
		}
	})
}
