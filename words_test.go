package main

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectTermFiltersByCategoryAndDifficulty(t *testing.T) {
	t.Parallel()

	words := defaultWordList()

	for i := 0; i < 20; i++ {
		term, err := words.selectTerm("Movie", DifficultyEasy)
		require.NoError(t, err)
		assert.Equal(t, "Movie", term.Category)
		assert.Equal(t, DifficultyEasy, term.Difficulty)
	}
}

func TestSelectTermBothMatchesAnyCategory(t *testing.T) {
	t.Parallel()

	words := defaultWordList()

	categories := make(map[string]bool)
	for i := 0; i < 50; i++ {
		term, err := words.selectTerm(CategoryAny, DifficultyEasy)
		require.NoError(t, err)
		assert.Equal(t, DifficultyEasy, term.Difficulty)
		categories[term.Category] = true
	}

	// Easy terms exist in both seed categories; a uniform pick across
	// 50 draws misses one only with negligible probability.
	assert.True(t, categories["Movie"])
	assert.True(t, categories["Song"])
}

func TestSelectTermNoMatch(t *testing.T) {
	t.Parallel()

	words := defaultWordList()

	_, err := words.selectTerm("Movie", "Nightmare")
	assert.ErrorIs(t, err, errNoEligibleWords)

	_, err = words.selectTerm("Podcast", DifficultyEasy)
	assert.ErrorIs(t, err, errNoEligibleWords)
}

func TestWordListAdd(t *testing.T) {
	t.Parallel()

	words := &WordList{}

	_, err := words.selectTerm(CategoryAny, DifficultyEasy)
	require.ErrorIs(t, err, errNoEligibleWords)

	words.add(Term{Word: "Jaws", Category: "Movie", Difficulty: DifficultyEasy})

	term, err := words.selectTerm("Movie", DifficultyEasy)
	require.NoError(t, err)
	assert.Equal(t, "Jaws", term.Word)
	assert.Equal(t, 1, words.size())
}

func TestParseWordsRaw(t *testing.T) {
	t.Parallel()

	terms := parseWordsRaw("Movie", DifficultyHard, " Alien , ,Tenet,  ,Memento ")

	require.Len(t, terms, 3)
	assert.Equal(t, "Alien", terms[0].Word)
	assert.Equal(t, "Tenet", terms[1].Word)
	assert.Equal(t, "Memento", terms[2].Word)
	for _, term := range terms {
		assert.Equal(t, "Movie", term.Category)
		assert.Equal(t, DifficultyHard, term.Difficulty)
	}
}

func TestAdminLogin(t *testing.T) {
	t.Parallel()

	cfg := testConfig()
	mux := httprouter.New()
	registerWordAdmin(cfg, defaultWordList(), mux)

	t.Run("valid credentials", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodPost, "/admin/login",
			strings.NewReader(`{"username":"admin","password":"charades123"}`))
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"success":true}`, rec.Body.String())
	})

	t.Run("invalid credentials", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodPost, "/admin/login",
			strings.NewReader(`{"username":"admin","password":"nope"}`))
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"success":false}`, rec.Body.String())
	})

	t.Run("malformed body", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodPost, "/admin/login", strings.NewReader("{"))
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestAdminAddWords(t *testing.T) {
	t.Parallel()

	cfg := testConfig()
	words := defaultWordList()
	mux := httprouter.New()
	registerWordAdmin(cfg, words, mux)

	initial := words.size()

	t.Run("requires credentials", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/admin/add-words",
			strings.NewReader(`{"type":"Movie","difficulty":"Easy","wordsRaw":"Jaws"}`))
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, initial, words.size())
	})

	t.Run("rejects bad credentials", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/admin/add-words",
			strings.NewReader(`{"type":"Movie","difficulty":"Easy","wordsRaw":"Jaws"}`))
		req.SetBasicAuth("admin", "wrong")
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, initial, words.size())
	})

	t.Run("adds parsed words", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/admin/add-words",
			strings.NewReader(`{"type":"Song","difficulty":"Medium","wordsRaw":"Hey Jude, Yesterday,"}`))
		req.SetBasicAuth("admin", "charades123")
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"success":true,"count":2}`, rec.Body.String())
		assert.Equal(t, initial+2, words.size())
	})
}
