package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/alejandro2cabezas/davincipropiedades-be/config"
	"github.com/alejandro2cabezas/davincipropiedades-be/internal/models"
)

// Schema definitions used only by AutoMigrate. Queries never go through GORM.

type usuarioRow struct {
	ID            uint      `gorm:"column:id;primaryKey"`
	Nombre        string    `gorm:"column:nombre;size:100"`
	Apellido      string    `gorm:"column:apellido;size:100"`
	Email         string    `gorm:"column:email;size:255;not null;uniqueIndex"`
	Telefono      string    `gorm:"column:telefono;size:50"`
	Password      string    `gorm:"column:password;size:255;not null"`
	Rol           string    `gorm:"column:rol;size:20;not null;default:'cliente'"`
	FechaRegistro time.Time `gorm:"column:fecha_registro;type:timestamp;default:CURRENT_TIMESTAMP"`
}

func (usuarioRow) TableName() string { return "usuarios" }

type tipoPropiedadRow struct {
	ID   uint   `gorm:"column:id;primaryKey"`
	Tipo string `gorm:"column:tipo;size:50;not null;uniqueIndex"`
}

func (tipoPropiedadRow) TableName() string { return "tipos_propiedad" }

type ubicacionRow struct {
	ID        uint   `gorm:"column:id;primaryKey"`
	Ciudad    string `gorm:"column:ciudad;size:100;not null;uniqueIndex"`
	Provincia string `gorm:"column:provincia;size:100"`
	Direccion string `gorm:"column:direccion;size:255"`
}

func (ubicacionRow) TableName() string { return "ubicaciones" }

type propiedadRow struct {
	ID               uint             `gorm:"column:id;primaryKey"`
	Titulo           string           `gorm:"column:titulo;size:200;not null"`
	Descripcion      string           `gorm:"column:descripcion;type:text"`
	Precio           float64          `gorm:"column:precio;type:decimal(14,2)"`
	Superficie       float64          `gorm:"column:superficie;type:decimal(10,2)"`
	Habitaciones     int              `gorm:"column:habitaciones"`
	Banos            int              `gorm:"column:banos"`
	TipoID           uint             `gorm:"column:tipo_id;not null"`
	Tipo             tipoPropiedadRow `gorm:"foreignKey:TipoID"`
	UbicacionID      uint             `gorm:"column:ubicacion_id;not null"`
	Ubicacion        ubicacionRow     `gorm:"foreignKey:UbicacionID"`
	UsuarioID        *uint            `gorm:"column:usuario_id"`
	Usuario          *usuarioRow      `gorm:"foreignKey:UsuarioID;constraint:OnDelete:SET NULL"`
	Destacada        bool             `gorm:"column:destacada;not null;default:false"`
	FechaPublicacion time.Time        `gorm:"column:fecha_publicacion;type:timestamp;default:CURRENT_TIMESTAMP"`
}

func (propiedadRow) TableName() string { return "propiedades" }

type imagenPropiedadRow struct {
	ID          uint         `gorm:"column:id;primaryKey"`
	PropiedadID uint         `gorm:"column:propiedad_id;not null;index"`
	Propiedad   propiedadRow `gorm:"foreignKey:PropiedadID;constraint:OnDelete:CASCADE"`
	URLImagen   string       `gorm:"column:url_imagen;size:500;not null"`
}

func (imagenPropiedadRow) TableName() string { return "imagenes_propiedad" }

type favoritoRow struct {
	ID            uint         `gorm:"column:id;primaryKey"`
	UsuarioID     uint         `gorm:"column:usuario_id;not null;uniqueIndex:idx_favoritos_par"`
	Usuario       usuarioRow   `gorm:"foreignKey:UsuarioID;constraint:OnDelete:CASCADE"`
	PropiedadID   uint         `gorm:"column:propiedad_id;not null;uniqueIndex:idx_favoritos_par"`
	Propiedad     propiedadRow `gorm:"foreignKey:PropiedadID;constraint:OnDelete:CASCADE"`
	FechaAgregado time.Time    `gorm:"column:fecha_agregado;type:timestamp;default:CURRENT_TIMESTAMP"`
}

func (favoritoRow) TableName() string { return "favoritos" }

// agentes, reservas and ventas are not served by any route. They exist so the
// reset script has the full schema to clear.

type agenteRow struct {
	ID        uint       `gorm:"column:id;primaryKey"`
	UsuarioID uint       `gorm:"column:usuario_id;not null"`
	Usuario   usuarioRow `gorm:"foreignKey:UsuarioID"`
	Matricula string     `gorm:"column:matricula;size:50"`
	Telefono  string     `gorm:"column:telefono;size:50"`
}

func (agenteRow) TableName() string { return "agentes" }

type reservaRow struct {
	ID           uint         `gorm:"column:id;primaryKey"`
	PropiedadID  uint         `gorm:"column:propiedad_id;not null"`
	Propiedad    propiedadRow `gorm:"foreignKey:PropiedadID"`
	UsuarioID    uint         `gorm:"column:usuario_id;not null"`
	Usuario      usuarioRow   `gorm:"foreignKey:UsuarioID"`
	FechaReserva time.Time    `gorm:"column:fecha_reserva;type:timestamp;default:CURRENT_TIMESTAMP"`
	Estado       string       `gorm:"column:estado;size:20;default:'pendiente'"`
}

func (reservaRow) TableName() string { return "reservas" }

type ventaRow struct {
	ID          uint         `gorm:"column:id;primaryKey"`
	PropiedadID uint         `gorm:"column:propiedad_id;not null"`
	Propiedad   propiedadRow `gorm:"foreignKey:PropiedadID"`
	UsuarioID   uint         `gorm:"column:usuario_id;not null"`
	Usuario     usuarioRow   `gorm:"foreignKey:UsuarioID"`
	PrecioFinal float64      `gorm:"column:precio_final;type:decimal(14,2)"`
	FechaVenta  time.Time    `gorm:"column:fecha_venta;type:timestamp;default:CURRENT_TIMESTAMP"`
}

func (ventaRow) TableName() string { return "ventas" }

// RunMigrations creates missing tables, indexes and foreign keys, then seeds
// the property type vocabulary. Existing rows are left untouched.
func (d *Database) RunMigrations() error {
	gdb, err := gorm.Open(d.dialect.Gorm(d.db), &gorm.Config{
		Logger: gormlogger.New(d.logger, gormlogger.Config{
			SlowThreshold: time.Second,
			LogLevel:      gormlogger.Warn,
		}),
	})
	if err != nil {
		return fmt.Errorf("failed to open migration session: %w", err)
	}

	err = gdb.AutoMigrate(
		&usuarioRow{},
		&tipoPropiedadRow{},
		&ubicacionRow{},
		&propiedadRow{},
		&imagenPropiedadRow{},
		&favoritoRow{},
		&agenteRow{},
		&reservaRow{},
		&ventaRow{},
	)
	if err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}

	for _, name := range config.SupportedPropertyTypes {
		row := tipoPropiedadRow{Tipo: name}
		if err := gdb.Where(&row).FirstOrCreate(&row).Error; err != nil {
			return fmt.Errorf("failed to seed property type %s: %w", name, err)
		}
	}

	return nil
}

// EnsureUser inserts u unless a user with the same email already exists.
// It reports whether a row was created.
func (d *Database) EnsureUser(ctx context.Context, u *models.User) (bool, error) {
	_, err := d.GetUserByEmail(ctx, u.Email)
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return false, err
	}

	if _, err := d.CreateUser(ctx, u); err != nil {
		return false, err
	}
	return true, nil
}
