package stl

import "errors"

// ErrConv indicates the input was not well-formed in its declared encoding.
var ErrConv = errors.New("stl: conversion failed")
