package controllers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"resortpay/config"
	"resortpay/models"
	"resortpay/repository"
	"resortpay/utils"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

const (
	msgDBUnavailable = "Base de datos no disponible"
	msgInvalidID     = "ID inválido"
	msgInvalidBody   = "Cuerpo JSON inválido"
	msgInvalidData   = "Datos inválidos"
)

// parseObjectID lee el parámetro de ruta y responde 400 si no es un ObjectID.
func parseObjectID(c *gin.Context, param string) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(c.Param(param))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: msgInvalidID})
		return primitive.NilObjectID, false
	}
	return id, true
}

// respondStorageError traduce un error del repositorio a la respuesta HTTP.
// El detalle del driver solo va al log.
func respondStorageError(c *gin.Context, err error, notFound, failure string) {
	switch {
	case errors.Is(err, repository.ErrNotFound) && notFound != "":
		c.JSON(http.StatusNotFound, models.ErrorResponse{Error: notFound})
	case errors.Is(err, config.ErrNoDatabase):
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: msgDBUnavailable})
	default:
		utils.LoggerFrom(c.Request.Context()).Error(failure,
			zap.Error(err),
			zap.String("route", c.FullPath()),
		)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: failure})
	}
}

type bodyError struct {
	msg    string
	detail string
}

func (e *bodyError) Error() string {
	if e.detail == "" {
		return e.msg
	}
	return e.msg + ": " + e.detail
}

func respondBodyError(c *gin.Context, err error) {
	var be *bodyError
	if errors.As(err, &be) && be.detail != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": be.msg, "detalle": be.detail})
		return
	}
	c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: err.Error()})
}

// decodeBody descarta las claves protegidas, rechaza cualquier otra clave que
// no sea un campo de dst y valida dst con los tags binding.
func decodeBody(c *gin.Context, dst interface{}, protected []string) error {
	var raw map[string]json.RawMessage
	if err := json.NewDecoder(c.Request.Body).Decode(&raw); err != nil {
		return &bodyError{msg: msgInvalidBody}
	}
	for _, k := range protected {
		delete(raw, k)
	}

	buf, err := json.Marshal(raw)
	if err != nil {
		return &bodyError{msg: msgInvalidBody}
	}

	dec := json.NewDecoder(bytes.NewReader(buf))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return &bodyError{msg: msgInvalidData, detail: "tipo inválido en " + typeErr.Field}
		}
		if field, ok := unknownField(err); ok {
			return &bodyError{msg: "Campo no permitido: " + field}
		}
		return &bodyError{msg: msgInvalidBody}
	}

	if err := binding.Validator.ValidateStruct(dst); err != nil {
		return &bodyError{msg: msgInvalidData, detail: validationDetail(err)}
	}
	return nil
}

// unknownField depende del texto que produce encoding/json con
// DisallowUnknownFields (`json: unknown field "x"`); no hay error tipado.
func unknownField(err error) (string, bool) {
	const prefix = "json: unknown field "
	s := err.Error()
	if !strings.HasPrefix(s, prefix) {
		return "", false
	}
	field, uerr := strconv.Unquote(strings.TrimPrefix(s, prefix))
	if uerr != nil {
		return strings.TrimPrefix(s, prefix), true
	}
	return field, true
}
